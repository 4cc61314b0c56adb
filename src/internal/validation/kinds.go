package validation

import "fmt"

// Kind identifies a validation failure so callers can branch on it
// without matching the localized message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidAmountFormat
	KindAmountNegative
	KindAmountNonPositive
	KindAmountBelowMinimum
	KindAmountAboveMaximum
	KindUnsupportedCurrency
	KindUnsupportedTransactionType
	KindUnsupportedInvestmentType
	KindInvalidProfitRate
	KindInvalidDate
	KindInvalidDateRange
	KindInvalidAccountNumber
	KindPhoneRequired
	KindInvalidPhoneNumber
	KindInvalidEmail
	KindInvalidPassword
	KindMissingDescription
	KindFieldRequired
	KindRateLimitCooldown
	KindRateLimitAttemptsExceeded
	KindUnsupportedCurrencyPair
)

// User-facing messages stay in Arabic: they travel to the client as-is.
var messages = map[Kind]string{
	KindInvalidAmountFormat:        "المبلغ يجب أن يكون رقماً صالحاً",
	KindAmountNegative:             "المبلغ لا يمكن أن يكون سالباً",
	KindAmountNonPositive:          "المبلغ يجب أن يكون أكبر من صفر",
	KindAmountBelowMinimum:         "المبلغ أقل من الحد الأدنى المسموح (%s)",
	KindAmountAboveMaximum:         "المبلغ أكبر من الحد الأقصى المسموح (%s)",
	KindUnsupportedCurrency:        "العملة غير مدعومة",
	KindUnsupportedTransactionType: "نوع المعاملة غير مدعوم",
	KindUnsupportedInvestmentType:  "نوع الاستثمار غير مدعوم",
	KindInvalidProfitRate:          "نسبة الربح يجب أن تكون بين 0 و 100",
	KindInvalidDate:                "التاريخ غير صالح",
	KindInvalidDateRange:           "تاريخ النهاية يجب أن يكون بعد تاريخ البداية",
	KindInvalidAccountNumber:       "رقم الحساب غير صالح، الصيغة المطلوبة ACC متبوعة بتسعة أرقام",
	KindPhoneRequired:              "رقم الهاتف مطلوب",
	KindInvalidPhoneNumber:         "رقم الهاتف غير صالح",
	KindInvalidEmail:               "البريد الإلكتروني غير صالح",
	KindInvalidPassword:            "كلمة المرور يجب أن تكون بين 6 و 128 حرفاً",
	KindMissingDescription:         "الوصف مطلوب",
	KindFieldRequired:              "هذا الحقل مطلوب",
	KindRateLimitCooldown:          "يرجى الانتظار 30 ثانية قبل إجراء عملية جديدة",
	KindRateLimitAttemptsExceeded:  "تم تجاوز الحد الأقصى لعدد المحاولات، حاول لاحقاً",
	KindUnsupportedCurrencyPair:    "التحويل بين هاتين العملتين غير مدعوم",
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind Kind, args ...any) *Error {
	msg, ok := messages[kind]
	if !ok {
		msg = "قيمة غير صالحة"
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{Kind: kind, Message: msg}
}

// Join flattens a collect-all error list into the "؛ "-separated string the
// HTTP layer returns, mirroring how single-field failures are reported.
func Join(errs []*Error) string {
	if len(errs) == 0 {
		return ""
	}
	out := errs[0].Message
	for _, e := range errs[1:] {
		out += "؛ " + e.Message
	}
	return out
}
