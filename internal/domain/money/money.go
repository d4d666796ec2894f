package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmountString 金額文字列が解析できないエラー
	ErrInvalidAmountString = errors.New("invalid amount string")
	// ErrNegativeAmount 金額が負のエラー
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrFractionalPence 最小通貨単位未満の端数があるエラー
	ErrFractionalPence = errors.New("amount has sub-minor-unit precision")
)

// 1通貨単位あたりの最小単位数（GBPでは1ポンド=100ペンス）
var minorUnitsPerMajor = decimal.NewFromInt(100)

// FormatAmount 最小通貨単位の金額を表示用文字列に変換する
// 例: 2500 -> "£25.00"
func FormatAmount(amountInPence int64) string {
	major := decimal.NewFromInt(amountInPence).Div(minorUnitsPerMajor)
	return "£" + major.StringFixed(2)
}

// ParseAmount 表示用文字列を最小通貨単位の金額に変換する
// 例: "£25.00" -> 2500
// 浮動小数点は使わず、10進数演算で正確に変換する
func ParseAmount(amountString string) (int64, error) {
	clean := strings.TrimSpace(amountString)
	clean = strings.ReplaceAll(clean, "£", "")
	clean = strings.ReplaceAll(clean, ",", "")
	if clean == "" {
		return 0, ErrInvalidAmountString
	}

	major, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, ErrInvalidAmountString
	}
	if major.IsNegative() {
		return 0, ErrNegativeAmount
	}

	minor := major.Mul(minorUnitsPerMajor)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, ErrFractionalPence
	}

	return minor.IntPart(), nil
}
