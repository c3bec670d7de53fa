package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/ka2n/mealdb/api"
	"github.com/mattn/go-isatty"
)

const ruleWidth = 50

// renderer prints lookup results to a writer.
// Styling degrades to plain text when the writer is not a terminal.
type renderer struct {
	w     io.Writer
	title lipgloss.Style
}

func newRenderer(w io.Writer) *renderer {
	lr := lipgloss.NewRenderer(w)
	return &renderer{
		w: w,
		title: lr.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
	}
}

// MealList prints one "<id>: <name>" line per meal, or emptyMsg when there are none
func (r *renderer) MealList(meals []api.Meal, emptyMsg string) {
	if len(meals) == 0 {
		fmt.Fprintln(r.w, emptyMsg)
		return
	}
	for _, meal := range meals {
		fmt.Fprintf(r.w, "%s: %s\n", meal.ID(), meal.Name())
	}
}

// Categories prints a header followed by one bulleted line per category
func (r *renderer) Categories(categories []string) {
	fmt.Fprintln(r.w, "Available categories:")
	for _, c := range categories {
		fmt.Fprintf(r.w, "- %s\n", c)
	}
}

// MealDetails prints the full summary of a meal. A nil meal prints a single error line.
func (r *renderer) MealDetails(meal api.Meal) {
	if meal == nil {
		fmt.Fprintln(r.w, "Error: Could not retrieve meal details.")
		return
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.title.Render(fmt.Sprintf("✨ %s ✨", meal.GetOr(api.FieldName, "Unknown Meal Name"))))
	fmt.Fprintln(r.w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(r.w, "Category: %s | Cuisine: %s\n",
		meal.GetOr(api.FieldCategory, "N/A"),
		meal.GetOr(api.FieldArea, "N/A"),
	)

	fmt.Fprintln(r.w, "\n📝 Ingredients:")
	for _, ing := range meal.Ingredients() {
		fmt.Fprintf(r.w, "- %s (%s)\n", ing.Name, ing.Measure)
	}

	fmt.Fprintln(r.w, "\n📖 Instructions:")
	fmt.Fprintln(r.w, meal.GetOr(api.FieldInstructions, "No instructions available."))
}

// MealDetailsMarkdown prints the meal summary as markdown rendered for the terminal
func (r *renderer) MealDetailsMarkdown(meal api.Meal) error {
	if meal == nil {
		r.MealDetails(nil)
		return nil
	}
	out, err := renderMarkdown(mealMarkdown(meal), isTerminal(r.w))
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.w, out)
	return err
}

// mealMarkdown formats a meal as a markdown document
func mealMarkdown(meal api.Meal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", meal.GetOr(api.FieldName, "Unknown Meal Name"))
	fmt.Fprintf(&b, "**Category:** %s | **Cuisine:** %s\n\n",
		meal.GetOr(api.FieldCategory, "N/A"),
		meal.GetOr(api.FieldArea, "N/A"),
	)
	if tags := meal[api.FieldTags]; tags != "" {
		fmt.Fprintf(&b, "**Tags:** %s\n\n", strings.ReplaceAll(tags, ",", ", "))
	}

	b.WriteString("## Ingredients\n\n")
	for _, ing := range meal.Ingredients() {
		fmt.Fprintf(&b, "- %s (%s)\n", ing.Name, ing.Measure)
	}

	b.WriteString("\n## Instructions\n\n")
	b.WriteString(meal.GetOr(api.FieldInstructions, "No instructions available."))
	b.WriteString("\n")

	var links []string
	if v := meal[api.FieldYoutube]; v != "" {
		links = append(links, fmt.Sprintf("- [Video](%s)", v))
	}
	if v := meal[api.FieldSource]; v != "" {
		links = append(links, fmt.Sprintf("- [Source](%s)", v))
	}
	if len(links) > 0 {
		b.WriteString("\n## Links\n\n")
		b.WriteString(strings.Join(links, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderMarkdown renders markdown with glamour, using the plain style off a terminal
func renderMarkdown(md string, tty bool) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if tty {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
