package credentials

import (
	"strings"

	masker "github.com/goliatone/go-masker"
	"github.com/markitondemand/go-testaccounts/pkg/domain"
)

var defaultSecretFields = []string{
	"password", "passwd", "pass",
	"pin", "otp", "secret",
}

func init() {
	// Register credential-ish fields so masking uses sane defaults.
	for _, field := range defaultSecretFields {
		// Preserve a few characters where possible; fallback to filled if unknown to masker.
		masker.Default.RegisterMaskField(field, "preserveEnds(1,1)")
	}
}

// MaskAccount returns a masked view of the account for safe logging. The
// password never leaves this function unmasked.
func MaskAccount(account domain.Account) map[string]any {
	return map[string]any{
		"username":     account.Username,
		"display_name": account.DisplayName,
		"password":     MaskPassword(account.Password),
	}
}

// MaskPassword masks a raw credential value, keeping one character on either
// end for operator recognition.
func MaskPassword(value string) string {
	if value == "" {
		return ""
	}
	if masked, err := masker.Default.String("preserveEnds(1,1)", value); err == nil {
		return masked
	}
	// Fallback masking if no rule is registered.
	runes := []rune(value)
	if len(runes) <= 2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:1]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1:])
}
