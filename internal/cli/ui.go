package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/shuffleset/pkg/pipeline"
	"github.com/matzehuels/shuffleset/pkg/shuffle"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleTableCell   = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	styleTableMuted  = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Run Output
// =============================================================================

// trackTable renders tracks with their position and artist key.
func trackTable(tracks []shuffle.Item) *table.Table {
	rows := make([][]string, len(tracks))
	for i, it := range tracks {
		rows[i] = []string{strconv.Itoa(i + 1), it.Artist(), it.Name()}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "Artist", "File").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHeader
			case col == 0:
				return styleTableMuted
			default:
				return styleTableCell
			}
		})
}

// printTracks prints the input tracks of a run.
func printTracks(tracks []shuffle.Item) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("Input tracks (%d)", len(tracks))))
	fmt.Println(trackTable(tracks).Render())
}

// printSummary prints what a run produced. Dry runs list every ordering.
func printSummary(r *pipeline.Result, dryRun bool) {
	printNewline()
	printKeyValue("Input", r.InputDir)
	printKeyValue("Output", r.OutputRoot)
	printKeyValue("Tracks", StyleNumber.Render(strconv.Itoa(len(r.Tracks))))
	printKeyValue("Orderings", budgetLine(r))
	if r.ValidKnown {
		printKeyValue("Valid", StyleNumber.Render(strconv.Itoa(r.ValidOrderings))+StyleDim.Render(" without same-artist neighbours"))
	}
	printKeyValue("Run", StyleDim.Render(r.RunID))

	if len(r.Skipped) > 0 {
		printWarning("Skipped %d existing folders (use --force to replace them)", len(r.Skipped))
		for _, dir := range r.Skipped {
			printDetail("%s", filepath.Base(dir))
		}
	}

	if len(r.Orderings) == 0 {
		return
	}
	printNewline()
	if !dryRun {
		for _, g := range r.Orderings {
			printFile(g.Folder)
		}
		return
	}
	printInfo("Dry run, nothing was copied")
	for _, g := range r.Orderings {
		fmt.Println(StyleTitle.Render(filepath.Base(g.Folder)) + StyleDim.Render(fmt.Sprintf("  (%d attempts)", g.Ordering.Attempts)))
		for i, name := range g.Ordering.Names() {
			printDetail("%*d. %s", digits(len(r.Tracks)), i+1, name)
		}
	}
}

// budgetLine describes how many orderings were generated out of the request.
func budgetLine(r *pipeline.Result) string {
	b := r.Budget
	line := fmt.Sprintf("%d generated", len(r.Orderings))
	switch {
	case b.Truncated:
		line += fmt.Sprintf(", %d requested, %d possible", b.Requested, b.Max)
	case r.Limited:
		line += fmt.Sprintf(", request limited to %d", b.Requested)
	default:
		line += fmt.Sprintf(" of %d", b.Effective)
	}
	return line
}

func digits(n int) int {
	return len(strconv.Itoa(n))
}
