package parser

import "github.com/carrierops/interpreter/pkg/core"

var (
	clockRateRule = newRule("@CLOCK <rate>", func(r *fieldReader) core.MiscCommand {
		return core.SetClockRate{Rate: r.rate("rate")}
	})
	runRule  = mustShape("@RUN <path>")
	exitRule = newRule("@EXIT", func(*fieldReader) core.MiscCommand {
		return core.Exit{}
	})
	waitRule = newRule("@WAIT <duration>", func(r *fieldReader) core.MiscCommand {
		return core.Wait{Duration: r.rate("duration")}
	})
)

func (in *Interpreter) parseMisc(st statement) (core.MiscCommand, error) {
	switch st.word(0) {
	case "@CLOCK":
		return parseClock(st)
	case "@RUN":
		return in.parseRun(st)
	case "@EXIT":
		return exitRule.apply(st)
	default:
		return waitRule.apply(st)
	}
}

// parseClock tries the bare, keyword and rate forms in that order.
func parseClock(st statement) (core.MiscCommand, error) {
	switch st.len() {
	case 1:
		return core.ShowClock{}, nil
	case 2:
		switch st.word(1) {
		case "PAUSE":
			return core.SetClockRunning{Running: false}, nil
		case "RESUME":
			return core.SetClockRunning{Running: true}, nil
		case "UPDATE":
			return core.ClockUpdate{}, nil
		}
		return clockRateRule.apply(st)
	default:
		return nil, st.invalid("expected @CLOCK [PAUSE|RESUME|UPDATE|<rate>], got %d tokens", st.len())
	}
}

func (in *Interpreter) parseRun(st statement) (core.MiscCommand, error) {
	r, perr := runRule.read(st)
	if perr != nil {
		return nil, perr
	}
	path := r.token("path")
	if !in.deps.Files.FileExists(path) {
		return nil, newError(InvalidFilename, st.text, "%q is not a regular file", path)
	}
	return core.RunFile{Path: path}, nil
}
