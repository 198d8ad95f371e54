package app

import (
	"context"
	"github.com/lefinal/meh"
)

// commandInit initializes an empty form project in the locator's context
// directory.
func commandInit(_ context.Context, commandOpts commandOptions) error {
	err := commandOpts.Locator.InitProject(commandOpts.Logger.Named("init"))
	if err != nil {
		return meh.Wrap(err, "init project", nil)
	}
	return nil
}
