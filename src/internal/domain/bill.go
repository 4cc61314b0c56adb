package domain

import "github.com/shopspring/decimal"

type BillType struct {
	Code      string
	Name      string
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
}

func bill(code, name string, min, max int64) BillType {
	return BillType{
		Code:      code,
		Name:      name,
		MinAmount: decimal.NewFromInt(min),
		MaxAmount: decimal.NewFromInt(max),
	}
}

// BillTypes is the catalog of payable bills with their per-type amount
// bounds in DZD. Names are the user-facing Arabic labels.
var BillTypes = []BillType{
	bill("electricity", "فاتورة الكهرباء", 100, 50_000),
	bill("water", "فاتورة الماء", 100, 30_000),
	bill("gas", "فاتورة الغاز", 100, 30_000),
	bill("internet", "فاتورة الإنترنت", 500, 10_000),
	bill("phone", "فاتورة الهاتف", 100, 20_000),
}

func FindBillType(code string) (BillType, bool) {
	for _, bt := range BillTypes {
		if bt.Code == code {
			return bt, true
		}
	}
	return BillType{}, false
}
