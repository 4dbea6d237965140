package ui

import (
	"fmt"

	"poolpay/internal/groups"

	"github.com/manifoldco/promptui"
)

// PickGroup runs an interactive selection over the user's funding groups and
// returns the chosen one. Returns nil without error when the user backs out.
func PickGroup(list []groups.Group) (*groups.Group, error) {
	if len(list) == 0 {
		fmt.Println("No groups found.")
		return nil, nil
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Name | cyan }} ({{ .Status }})",
		Inactive: "  {{ .Name }} ({{ .Status }})",
		Selected: "{{ .Name }}",
		Details: `
--------- Group ----------
Name:        {{ .Name }}
Description: {{ .Description }}
Target:      {{ .Target }}
Contributed: {{ .Contributed }}
Status:      {{ .Status }}`,
	}

	prompt := promptui.Select{
		Label:     "Select a group",
		Items:     list,
		Templates: templates,
		Size:      10,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		if err == promptui.ErrEOF || err == promptui.ErrInterrupt {
			return nil, nil
		}
		return nil, err
	}
	return &list[idx], nil
}
