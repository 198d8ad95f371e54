package app

import (
	"context"
	"fmt"
	"github.com/carldea/cognitive-sub001/formbuilder"
	"github.com/carldea/cognitive-sub001/viewfile"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
)

// commandVerify parses the form definition, reports structural findings and
// makes sure all view models can actually be built from it.
func commandVerify(_ context.Context, commandOpts commandOptions) error {
	form, err := viewfile.FromFile(commandOpts.Locator.FormFilename())
	if err != nil {
		return meh.Wrap(err, "form from file", meh.Details{"filename": commandOpts.Locator.FormFilename()})
	}
	report := form.Validate()
	for _, issue := range report.Warnings {
		commandOpts.Logger.Warn(fmt.Sprintf("form issue: %s: %s", issue.Field, issue.Detail),
			zap.Any("bad_value", issue.BadValue))
	}
	for _, issue := range report.Errors {
		commandOpts.Logger.Error(fmt.Sprintf("invalid form field: %s: %s", issue.Field, issue.Detail),
			zap.Any("bad_value", issue.BadValue))
	}
	if report.HasErrors() {
		return meh.NewBadInputErr("form verification failed", meh.Details{
			"form_name": form.Name,
			"errors":    len(report.Errors),
			"warnings":  len(report.Warnings),
		})
	}
	// Structure is fine. Assure the view models build as well so that rule
	// compilation errors surface during verify and not at run-time.
	_, err = formbuilder.NewDirectory(commandOpts.Logger.Named("build"), form)
	if err != nil {
		return meh.Wrap(err, "build view model directory", meh.Details{"form_name": form.Name})
	}
	commandOpts.Logger.Info("form ok",
		zap.String("form_name", form.Name),
		zap.Int("view_models", len(form.ViewModels)),
		zap.Int("warnings", len(report.Warnings)))
	return nil
}
