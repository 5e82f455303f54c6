package cli

import (
	"context"
	"fmt"
	"os"
)

// Register prompts for account details and creates the account. The user
// still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	userID, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	printlnFn("Registered, user id:", userID)
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	a.email = email
	printlnFn("Logged in")
	return nil
}

// List prints the caller's texts, most recently practiced first, with
// never-practiced texts at the bottom (server ordering).
func (a *App) List(ctx context.Context, args []string) error {
	search := ""
	if len(args) > 0 {
		search = args[0]
	}

	texts, err := a.api.ListTexts(ctx, search)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	if len(texts) == 0 {
		printlnFn("No texts yet. Use 'add' to create one.")
		return nil
	}

	for _, t := range texts {
		practiced := "never"
		if t.LastPracticedAt != nil {
			practiced = t.LastPracticedAt.Local().Format("2006-01-02 15:04")
		}
		printlnFn(fmt.Sprintf("%s  %-30q last practiced: %s", t.ID, t.Title, practiced))
	}
	return nil
}

// Show prints a single text in full, with its tags and timestamps.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <id>")
		return nil
	}

	text, err := a.api.GetText(ctx, args[0])
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Title: %s", text.Title))
	if text.Tags != "" {
		printlnFn(fmt.Sprintf("Tags: %s", text.Tags))
	}
	practiced := "never"
	if text.LastPracticedAt != nil {
		practiced = text.LastPracticedAt.Local().Format("2006-01-02 15:04")
	}
	printlnFn(fmt.Sprintf("Last practiced: %s", practiced))
	printlnFn("")
	printlnFn(text.Content)
	return nil
}

// Add prompts for a title, content and tags and stores a new text.
func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := GetSimpleText(a.reader, "Enter tags (comma-separated, optional)", os.Stdout)
	if err != nil {
		return err
	}

	textID, err := a.api.CreateText(ctx, title, content, tags)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}

	printlnFn("Saved, text id:", textID)
	return nil
}

// Logout deletes the server-side session and forgets the token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}
	a.email = ""
	printlnFn("Logged out")
	return nil
}
