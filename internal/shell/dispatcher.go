package shell

import "strings"

// Effect is a side effect the caller must perform after dispatch.
type Effect int

const (
	EffectNone Effect = iota
	EffectRain
	EffectDownload
)

// Result is the outcome of dispatching one command.
type Result struct {
	Output Output
	// Clear means the transcript is emptied and no entry is appended.
	Clear  bool
	Effect Effect
}

// HandlerFunc produces the result for a recognized command.
type HandlerFunc func(d *Dispatcher, raw string) Result

// CommandDef describes a command known to the dispatcher.
type CommandDef struct {
	Name        string
	Aliases     []string
	Description string
	Handler     HandlerFunc
}

// Dispatcher maps submitted text to results.
type Dispatcher struct {
	registry  map[string]CommandDef
	resumeURL string
}

// DispatcherConfig configures a Dispatcher.
type DispatcherConfig struct {
	// ResumeURL is shown as the fallback link for /cv.
	ResumeURL string
	// Aliases maps extra names (with marker) to canonical commands.
	Aliases map[string]string
}

// NewDispatcher creates a dispatcher with the built-in commands.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	d := &Dispatcher{
		registry:  make(map[string]CommandDef),
		resumeURL: cfg.ResumeURL,
	}

	for _, def := range builtinCommands() {
		d.register(def)
	}

	for alias, target := range cfg.Aliases {
		def, ok := d.registry[strings.ToLower(target)]
		if !ok {
			continue
		}
		name := strings.ToLower(alias)
		if !strings.HasPrefix(name, Marker) {
			name = Marker + name
		}
		if _, taken := d.registry[name]; taken {
			continue
		}
		d.registry[name] = def
	}

	return d
}

func builtinCommands() []CommandDef {
	section := func(s Section) HandlerFunc {
		return func(*Dispatcher, string) Result {
			return Result{Output: Output{Kind: OutputSection, Section: s}}
		}
	}

	return []CommandDef{
		{Name: CmdHome, Description: "Show the home page", Handler: section(SectionHome)},
		{Name: CmdExperience, Description: "Show my work experience", Handler: section(SectionExperience)},
		{Name: CmdProjects, Description: "Show my projects", Handler: section(SectionProjects)},
		{Name: CmdSkills, Description: "Show my technical skills", Handler: section(SectionSkills)},
		{Name: CmdContact, Description: "Show my contact details", Handler: section(SectionContact)},
		{Name: CmdCV, Description: "Download my CV", Handler: handleCV},
		{Name: CmdRain, Description: "Feel like a hacker", Handler: handleRain},
		{Name: CmdHelp, Description: "Show this help", Handler: handleHelp},
		{Name: CmdClear, Description: "Clear the terminal", Handler: handleClear},
	}
}

func (d *Dispatcher) register(def CommandDef) {
	d.registry[def.Name] = def
	for _, alias := range def.Aliases {
		d.registry[alias] = def
	}
}

// Lookup returns the command a text resolves to.
func (d *Dispatcher) Lookup(raw string) (CommandDef, bool) {
	def, ok := d.registry[normalize(raw)]
	return def, ok
}

// Dispatch resolves raw and returns its result. Unknown commands produce
// an OutputUnknown result that echoes raw unchanged.
func (d *Dispatcher) Dispatch(raw string) Result {
	if def, ok := d.Lookup(raw); ok {
		return def.Handler(d, raw)
	}
	return Result{Output: Output{Kind: OutputUnknown, Input: raw}}
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func handleCV(d *Dispatcher, _ string) Result {
	return Result{
		Output: Output{Kind: OutputDownload, Text: d.resumeURL},
		Effect: EffectDownload,
	}
}

func handleRain(*Dispatcher, string) Result {
	return Result{Output: Output{Kind: OutputRain}, Effect: EffectRain}
}

func handleHelp(*Dispatcher, string) Result {
	return Result{Output: Output{Kind: OutputHelp}}
}

func handleClear(*Dispatcher, string) Result {
	return Result{Clear: true}
}
