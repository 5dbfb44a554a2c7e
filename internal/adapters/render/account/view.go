package account

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const shareBarWidth = 20

// Summary is what one command shows. Nil sections are left out.
type Summary struct {
	Owner      domain.OwnerIdentity
	Accounts   domain.SmartAccounts
	Assets     *domain.AggregatedAssets
	Submission *Submission
}

type Submission struct {
	TransactionID string
	TrackingURL   string
	Chain         domain.ChainID
	Funding       []domain.FundingLeg
}

type RenderOptions struct {
	Now        time.Time
	StaleAfter time.Duration
}

func renderView(summary Summary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Universal Account"),
		s.header.Render("owner: " + ownerLabel(summary.Owner)),
	}

	if summary.Accounts.Complete() {
		lines = append(lines, s.section.Render(renderAccounts(summary.Accounts, s)))
	}
	if summary.Assets != nil {
		lines = append(lines, s.section.Render(renderAssets(*summary.Assets, opts, s)))
	}
	if summary.Submission != nil {
		lines = append(lines, s.section.Render(renderSubmission(*summary.Submission, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func ownerLabel(owner domain.OwnerIdentity) string {
	if owner.IsZero() {
		return "not connected"
	}
	return fmt.Sprintf("%s (%s)", owner, owner.Family())
}

func renderAccounts(accounts domain.SmartAccounts, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("EVM:    "), s.address.Render(accounts.EVM.Hex())),
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("Solana: "), s.address.Render(accounts.Solana.String())),
	)
}

func renderAssets(assets domain.AggregatedAssets, opts RenderOptions, s styles) string {
	headline := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render("Universal balance: "),
		s.total.Render(assets.TotalUSDString()),
	)
	if isStale(assets.FetchedAt, opts) {
		headline += " " + s.warning.Render("[stale]")
	}

	parts := []string{headline}
	breakdown := assets.Breakdown()
	if len(breakdown) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(parts, s.empty.Render("No assets yet."))...)
	}

	for _, balance := range breakdown {
		parts = append(parts, balanceLine(balance, assets.TotalInUSD, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func balanceLine(balance domain.TokenBalance, total decimal.Decimal, s styles) string {
	share := 0.0
	if total.IsPositive() {
		share, _ = balance.AmountInUSD.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	}
	shareStyle := lipgloss.NewStyle().Foreground(interpolateColor(share, 0, 100))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.token.Render(strings.ToUpper(string(balance.Token))),
		" ",
		s.detail.Render(fmt.Sprintf("%-14s", formatAmount(balance.Amount))),
		" ",
		s.detail.Render(fmt.Sprintf("%10s", "$"+balance.AmountInUSD.StringFixed(2))),
		" ",
		renderShareBar(share, shareBarWidth, s),
		" ",
		shareStyle.Render(fmt.Sprintf("%3.0f%%", share)),
	)
}

func renderSubmission(submission Submission, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("Submitted: "), s.detail.Render(submission.TransactionID)),
	}
	if submission.Chain != 0 {
		parts = append(parts, s.detail.Render("destination: "+submission.Chain.String()))
	}
	for _, leg := range submission.Funding {
		parts = append(parts, s.detail.Render(fmt.Sprintf("  from %s: %s %s", leg.FromChain, formatAmount(leg.Amount), strings.ToUpper(string(leg.Token)))))
	}
	if submission.TrackingURL != "" {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("Track: "), s.link.Render(submission.TrackingURL)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func formatAmount(amount decimal.Decimal) string {
	return amount.Truncate(6).String()
}

func isStale(fetchedAt time.Time, opts RenderOptions) bool {
	if opts.Now.IsZero() || opts.StaleAfter <= 0 || fetchedAt.IsZero() {
		return false
	}
	return opts.Now.Sub(fetchedAt) > opts.StaleAfter
}

func renderShareBar(sharePercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(sharePercent) / 100.0))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240.0+15.0*normalized)))
}
