package components

import (
    "strings"

    "github.com/interpretive-systems/labsend/internal/submit"
    "github.com/interpretive-systems/labsend/internal/theme"
)

// Feedback renders the banner for an outcome. Idle renders nothing; callers
// skip it entirely while a submit is in flight. Long server messages wrap
// onto several banner lines.
func Feedback(o submit.Outcome, t theme.Theme, width int) []string {
    var banner string
    switch o.Kind {
    case submit.Success:
        banner = t.SuccessLine(" ✓ "+o.Message, width)
    case submit.Failure:
        banner = t.ErrorLine(" ✗ "+o.Message, width)
    default:
        return nil
    }
    return strings.Split(banner, "\n")
}
