package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Composite validators run every field validator unconditionally and collect
// all failures, so a client can surface every problem at once instead of
// fixing them one by one.

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type Signup struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// ValidateSignup returns a field-keyed error map; one message per field.
// Phone is optional in the signup path, so the lenient variant applies.
func ValidateSignup(in SignupInput) (Signup, map[string]*Error) {
	errs := make(map[string]*Error)
	out := Signup{Name: strings.TrimSpace(in.Name)}

	if out.Name == "" {
		errs["name"] = NewError(KindFieldRequired)
	}

	email, emailErr := Email(in.Email)
	if emailErr != nil {
		errs["email"] = emailErr
	}
	out.Email = email

	if pwErr := Password(in.Password); pwErr != nil {
		errs["password"] = pwErr
	} else {
		out.Password = in.Password
	}

	phone, phoneErr := PhoneNumber(in.Phone, "+213")
	if phoneErr != nil {
		errs["phone"] = phoneErr
	}
	out.Phone = phone

	if len(errs) > 0 {
		return Signup{}, errs
	}
	return out, nil
}

type TransactionInput struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type Transaction struct {
	Amount      decimal.Decimal
	Currency    string
	Type        string
	Description string
}

// ValidateTransaction returns the normalized payload and an ordered list of
// every failing field, never short-circuiting.
func ValidateTransaction(in TransactionInput) (Transaction, []*Error) {
	var errs []*Error
	var out Transaction

	amount, amountErr := Amount(in.Amount)
	if amountErr != nil {
		errs = append(errs, amountErr)
	}
	out.Amount = amount

	currency, currencyErr := Currency(in.Currency)
	if currencyErr != nil {
		errs = append(errs, currencyErr)
	}
	out.Currency = currency

	txType, typeErr := TransactionType(in.Type)
	if typeErr != nil {
		errs = append(errs, typeErr)
	}
	out.Type = txType

	out.Description = strings.TrimSpace(in.Description)
	if out.Description == "" {
		errs = append(errs, NewError(KindMissingDescription))
	}

	if len(errs) > 0 {
		return Transaction{}, errs
	}
	return out, nil
}

type InvestmentInput struct {
	Amount     string `json:"amount"`
	Type       string `json:"type"`
	ProfitRate string `json:"profit_rate"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type Investment struct {
	Amount     decimal.Decimal
	Type       string
	ProfitRate decimal.Decimal
	StartDate  string
	EndDate    string
}

func ValidateInvestment(in InvestmentInput) (Investment, []*Error) {
	var errs []*Error
	var out Investment

	amount, amountErr := Amount(in.Amount)
	if amountErr != nil {
		errs = append(errs, amountErr)
	}
	out.Amount = amount

	invType, typeErr := InvestmentType(in.Type)
	if typeErr != nil {
		errs = append(errs, typeErr)
	}
	out.Type = invType

	rate, rateErr := ProfitRate(in.ProfitRate)
	if rateErr != nil {
		errs = append(errs, rateErr)
	}
	out.ProfitRate = rate

	if rangeErr := DateRange(in.StartDate, in.EndDate); rangeErr != nil {
		errs = append(errs, rangeErr)
	} else {
		out.StartDate = strings.TrimSpace(in.StartDate)
		out.EndDate = strings.TrimSpace(in.EndDate)
	}

	if len(errs) > 0 {
		return Investment{}, errs
	}
	return out, nil
}
