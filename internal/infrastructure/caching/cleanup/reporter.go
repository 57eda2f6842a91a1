// Package cleanup provides ascii reporter
package cleanup

import (
	"fmt"
	"strings"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/interfaces"
)

const (
	cyan        = "\033[38;2;86;182;194m"  // One Dark Cyan: #56B6C2
	cyanBright  = "\033[38;2;97;228;240m"  // Brighter Cyan: #61E4F0
	dimCyan     = "\033[38;2;47;91;102m"   // Dim Cyan: #2F5B66
	grey        = "\033[38;2;110;118;129m" // Brighter Grey: #6E7681
	dimGrey     = "\033[38;2;75;82;99m"    // Darker Grey: #4B5263
	success     = "\033[38;2;62;130;144m"  // Dim Cyan: #3E8290
	warning     = "\033[38;2;229;192;123m" // One Dark Yellow: #E5C07B
	errorRed    = "\033[38;2;224;108;117m" // One Dark Red: #E06C75
	white       = "\033[38;2;171;178;191m" // One Dark Foreground: #ABB2BF
	whiteBright = "\033[38;2;220;225;230m" // Brighter White
	reset       = "\033[0m"
	bold        = "\033[1m"
)

type Reporter struct {
	cache interfaces.Cache
}

func NewReporter(cache interfaces.Cache) *Reporter {
	return &Reporter{cache: cache}
}

func (r *Reporter) LogStage(message string, args ...any) {
	formattedMsg := fmt.Sprintf(message, args...)
	fmt.Printf("%s%s✦ %s%s%s\n", success, bold, grey, formattedMsg, reset)
}

func (r *Reporter) LogSuccess(message string, args ...any) {
	formattedMsg := fmt.Sprintf(message, args...)
	fmt.Printf("%s%s✦ %s%s%s\n", success, bold, white, formattedMsg, reset)
}

func (r *Reporter) LogError(message string, err error) {
	fmt.Printf("%s%s✖ ERROR: %s%s: %v%s\n", bold, errorRed, grey, message, err, reset)
}

func (r *Reporter) LogWarning(message string, args ...any) {
	formattedMsg := fmt.Sprintf(message, args...)
	fmt.Printf("%s%s⚠ WARNING: %s%s%s\n", bold, warning, grey, formattedMsg, reset)
}

func (r *Reporter) LogInfo(message string, args ...any) {
	formattedMsg := fmt.Sprintf(message, args...)
	fmt.Printf("%s▶ %s%s%s\n", dimGrey, grey, formattedMsg, reset)
}

func (r *Reporter) GenerateTenantReport(tenantID string) string {
	var report strings.Builder
	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05 MST")

	// Tenant header with bright white name
	report.WriteString(fmt.Sprintf("%s%s▓ %s | Tenant: %s%s %s\n", bold, dimCyan, timestamp, whiteBright, tenantID, reset))

	// Status line for brand config and SEO settings
	var statusLine strings.Builder
	if _, exists := r.cache.GetBrandConfig(tenantID); exists {
		statusLine.WriteString(fmt.Sprintf("%s✦ %sBrand Config: %sLOADED%s",
			success, grey, white, reset))
	} else {
		statusLine.WriteString(fmt.Sprintf("%s○ %sBrand Config: %sNOT LOADED%s",
			dimGrey, grey, cyan, reset))
	}

	statusLine.WriteString("  ")

	if _, exists := r.cache.GetSeo(tenantID); exists {
		statusLine.WriteString(fmt.Sprintf("%s✦ %sSEO Settings: %sREADY%s",
			success, grey, white, reset))
	} else {
		statusLine.WriteString(fmt.Sprintf("%s○ %sSEO Settings: %sPRIMED%s",
			dimGrey, grey, cyan, reset))
	}
	report.WriteString(statusLine.String() + "\n")

	// Cached nodes line (lowercase labels)
	var countsLine strings.Builder
	countsLine.WriteString(fmt.Sprintf("%s✦ cached nodes:%s", cyanBright, reset))

	contentTypes := []struct {
		name   string
		getter func(string) ([]string, bool)
	}{
		{"heroes", r.cache.GetAllHeroIDs},
		{"faqs", r.cache.GetAllFaqIDs},
		{"ctas", r.cache.GetAllCtaIDs},
		{"forms", r.cache.GetAllFormIDs},
		{"media", r.cache.GetAllMediaSectionIDs},
	}

	for _, ct := range contentTypes {
		if ids, exists := ct.getter(tenantID); exists {
			countsLine.WriteString(fmt.Sprintf(" %s%s=%s%d%s", grey, ct.name, white, len(ids), reset))
		} else {
			countsLine.WriteString(fmt.Sprintf(" %s%s=%s-%s", grey, ct.name, dimGrey, reset))
		}
	}

	stats := r.cache.GetTenantStats(tenantID)
	countsLine.WriteString(fmt.Sprintf(" %stotal=%s%d%s", grey, whiteBright, stats.Size, reset))
	report.WriteString(countsLine.String() + "\n")

	return report.String()
}
