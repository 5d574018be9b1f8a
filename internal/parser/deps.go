package parser

import (
	"github.com/carrierops/interpreter/pkg/core"
	"github.com/spf13/afero"
)

// Sink receives finished command records, one method per family.
// Submission is fire-and-forget from the interpreter's side.
type Sink interface {
	SubmitTemplateDefinition(cmd core.TemplateCommand)
	SubmitAgentCreation(cmd core.AgentCommand)
	SubmitStructural(cmd core.StructuralCommand)
	SubmitBehavioral(cmd core.BehavioralCommand)
	SubmitMisc(cmd core.MiscCommand)
}

// TemplateRegistry is the read-only view of defined templates used by CREATE BOOM.
type TemplateRegistry interface {
	LookupTemplate(id core.Identifier) (core.TemplateCommand, bool)
}

// FileProbe answers whether a path names an existing regular file.
type FileProbe interface {
	FileExists(path string) bool
}

// FSProbe is a FileProbe over an afero filesystem.
type FSProbe struct {
	Fs afero.Fs
}

// NewFSProbe returns a probe over fs, or over the OS filesystem if fs is nil.
func NewFSProbe(fs afero.Fs) *FSProbe {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FSProbe{Fs: fs}
}

func (p *FSProbe) FileExists(path string) bool {
	info, err := p.Fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
