package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Charles-pyt/Frigo-Ai/internal/pantry"
	"github.com/Charles-pyt/Frigo-Ai/internal/recipe"
)

// Rendering is kept in pure functions over (writer, data, reference
// time) so output is deterministic under test.

const dateLayout = "2006-01-02"

// renderItems writes the inventory listing with freshness labels.
func renderItems(w io.Writer, items []pantry.Item, now time.Time) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Your fridge is empty. Run 'frigo scan' to add food.")
		return
	}

	fmt.Fprintf(w, "%d item(s) in the fridge:\n\n", len(items))
	for _, item := range items {
		f := pantry.Classify(item, now)
		expires := "no date"
		if item.ExpiresAt != nil {
			expires = "expires " + item.ExpiresAt.Format(dateLayout)
		}
		fmt.Fprintf(w, "  %-20s %-28s [%s]\n", item.Name, expires, f.Label)
		fmt.Fprintf(w, "    id: %s\n", item.ID)
	}
}

// renderItemDetail writes one item with its freshness and the recipes
// that use it.
func renderItemDetail(w io.Writer, item pantry.Item, now time.Time, matched []recipe.Recipe) {
	f := pantry.Classify(item, now)
	fmt.Fprintf(w, "%s [%s]\n", item.Name, f.Label)
	fmt.Fprintf(w, "  added:   %s\n", item.AddedAt.Format(dateLayout))
	if item.ExpiresAt != nil {
		fmt.Fprintf(w, "  expires: %s\n", item.ExpiresAt.Format(dateLayout))
	} else {
		fmt.Fprintln(w, "  expires: no date")
	}

	if len(matched) == 0 {
		fmt.Fprintln(w, "  no generated recipe uses this item")
		return
	}
	fmt.Fprintf(w, "  used in %d recipe(s):\n", len(matched))
	for _, r := range matched {
		fmt.Fprintf(w, "    - %s\n", r.Title)
	}
}

// renderRecipes writes the full recipe set.
func renderRecipes(w io.Writer, recipes []recipe.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes yet. Run 'frigo recipes' with food in your fridge.")
		return
	}

	for i, r := range recipes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", r.Title, r.PrepTime)
		fmt.Fprintf(w, "  %s\n", r.Description)
		fmt.Fprintln(w, "  Ingredients:")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(w, "    - %s (%s)\n", ing.Name, ing.Quantity)
		}
		fmt.Fprintln(w, "  Instructions:")
		for n, step := range r.Instructions {
			fmt.Fprintf(w, "    %d. %s\n", n+1, step)
		}
	}
}

// renderNames writes the scan result and the follow-up hint.
func renderNames(w io.Writer, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(w, "No food detected in that image.")
		return
	}
	fmt.Fprintf(w, "Detected %d item(s):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintf(w, "\nAdd them with: frigo add %s\n", strings.Join(quoteAll(names), " "))
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
