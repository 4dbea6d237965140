package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/browser"
)

// IsInteractive returns true if running in an interactive terminal
func IsInteractive() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PromptForInput prompts the user for input and returns the response
func PromptForInput(prompt string) string {
	if !IsInteractive() {
		return ""
	}

	fmt.Print(prompt)
	var input string
	_, _ = fmt.Scanln(&input)
	return strings.TrimSpace(input)
}

// Confirm asks a yes/no question; a non-interactive terminal answers no
func Confirm(question string) bool {
	if !IsInteractive() {
		return false
	}

	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}

// OpenInBrowser opens a URL in the system browser. When disabled via
// POOLPAY_NO_BROWSER=1 (or the open fails) the URL is printed instead so the
// user can follow it by hand.
func OpenInBrowser(url string) {
	if os.Getenv("POOLPAY_NO_BROWSER") == "1" {
		fmt.Printf("Open this link to continue: %s\n", url)
		return
	}
	if err := browser.OpenURL(url); err != nil {
		fmt.Printf("Could not open your browser. Open this link to continue: %s\n", url)
	}
}
