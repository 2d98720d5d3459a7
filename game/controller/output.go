package controller

import (
	"fmt"
	"io"
)

// Output receives everything the dispatcher emits
type Output interface {
	// Report receives a GPS_REPORT line ("x,y,DIRECTION")
	Report(line string)

	// Ignored receives a command that failed inside the bike
	Ignored(command string, err error)
}

// FormatIgnored renders the diagnostic for a failed command
func FormatIgnored(command string, err error) string {
	return Diagnostic{Command: command, Detail: err.Error()}.String()
}

// WriterOutput writes reports and diagnostics as lines to io.Writers.
// Both may be the same writer.
type WriterOutput struct {
	reports     io.Writer
	diagnostics io.Writer
}

// NewWriterOutput creates an Output writing reports to reports and
// ignored-command diagnostics to diagnostics
func NewWriterOutput(reports, diagnostics io.Writer) *WriterOutput {
	return &WriterOutput{
		reports:     reports,
		diagnostics: diagnostics,
	}
}

func (o *WriterOutput) Report(line string) {
	fmt.Fprintln(o.reports, line)
}

func (o *WriterOutput) Ignored(command string, err error) {
	fmt.Fprintln(o.diagnostics, FormatIgnored(command, err))
}

// Diagnostic is a recorded ignored command
type Diagnostic struct {
	Command string `json:"command"`
	Detail  string `json:"detail"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Ignored \"%s\": %s", d.Command, d.Detail)
}

// RecordingOutput keeps everything in memory and optionally forwards to
// another Output
type RecordingOutput struct {
	Reports     []string
	Diagnostics []Diagnostic
	next        Output
}

// NewRecordingOutput creates a recorder; next may be nil
func NewRecordingOutput(next Output) *RecordingOutput {
	return &RecordingOutput{next: next}
}

func (o *RecordingOutput) Report(line string) {
	o.Reports = append(o.Reports, line)
	if o.next != nil {
		o.next.Report(line)
	}
}

func (o *RecordingOutput) Ignored(command string, err error) {
	o.Diagnostics = append(o.Diagnostics, Diagnostic{Command: command, Detail: err.Error()})
	if o.next != nil {
		o.next.Ignored(command, err)
	}
}
