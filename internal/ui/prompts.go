package ui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/kutorol/my-own-collection/internal/common"
)

// ErrNonInteractive is returned by prompts when input is disabled
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// PromptYesNo prompts the user for a yes/no answer
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return defaultYes, ErrNonInteractive
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptInputRequired prompts for required input (cannot be blank)
func (u *UI) PromptInputRequired(prompt, help string) (string, error) {
	if u.nonInteractive {
		return "", ErrNonInteractive
	}

	var result string
	p := &survey.Input{
		Message: prompt,
		Help:    help,
	}

	validator := func(ans interface{}) error {
		s, _ := ans.(string)
		return common.ValidateNotEmpty(s)
	}
	err := survey.AskOne(p, &result, survey.WithValidator(validator))
	return result, err
}

// PromptMultiline opens a multi-line text entry; an empty answer is allowed
func (u *UI) PromptMultiline(prompt, defaultValue string) (string, error) {
	if u.nonInteractive {
		return defaultValue, ErrNonInteractive
	}

	var result string
	p := &survey.Multiline{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result)
	return result, err
}
