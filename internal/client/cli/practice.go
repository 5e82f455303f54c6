package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/memorizer/internal/client/practice"
)

// Practice fetches a text and steps through it interactively, one word or
// paragraph at a time. Marking the text complete reports the practice back
// to the server.
func (a *App) Practice(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: practice <id>")
		return nil
	}

	text, err := a.api.GetText(ctx, args[0])
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	s := practice.New(text.Content)
	if s.Len() == 0 {
		printlnFn("Text is empty, nothing to practice.")
		return nil
	}

	printlnFn(fmt.Sprintf("Practicing %q. Commands: (n)ext, (p)revious, (m)ode, (c)omplete, (q)uit", text.Title))

	for {
		printlnFn(fmt.Sprintf("[%s %d/%d] %s", s.Mode(), s.Cursor()+1, s.Len(), s.Current()))

		cmd, err := GetSimpleText(a.reader, "", os.Stdout)
		if err != nil {
			return err
		}

		switch strings.ToLower(cmd) {
		case "n", "next", "":
			if !s.Next() {
				printlnFn("Already at the last segment.")
			}
		case "p", "prev", "previous":
			if !s.Previous() {
				printlnFn("Already at the first segment.")
			}
		case "m", "mode":
			s.ToggleMode()
			printlnFn("Switched to", s.Mode().String(), "mode")
		case "c", "complete":
			practicedAt, err := a.api.MarkPracticed(ctx, text.ID)
			if err != nil {
				printlnFn("Error:", err)
				return err
			}
			printlnFn("Marked practiced at", practicedAt.Local().Format("2006-01-02 15:04"))
			return nil
		case "q", "quit":
			return nil
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
