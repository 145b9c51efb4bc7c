// Package experiment assembles runs from a config.Config: it samples the
// initial filament, picks a stepper from the [Registry], attaches the
// default metrics and produces field and frame reports.
package experiment
