package interp

// Environment is a single call frame's variable store. Writes
// (let/put/build/knock/rock) always target the current frame; reads fall
// back to an enclosing frame only when the current frame has never seen
// the name. This is the opposite of the teacher's lexically-scoped
// Environment, whose Set walks outer scopes looking for where a name was
// declared — Rockstar has no nested lexical scoping, only a flat global
// frame and one frame per function call, so a write always lands locally.
type Environment struct {
	vars    map[string]Value
	pronoun string
	outer   *Environment
}

// NewEnvironment creates a root frame with no outer fallback.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a frame whose Get falls back to outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]Value), outer: outer}
}

// Get resolves a variable, consulting the enclosing frame read-only if
// the current frame has never assigned it.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set always assigns into the current frame, never an enclosing one.
func (e *Environment) Set(name string, v Value) {
	e.vars[name] = v
}

// SetPronoun records name as the referent for the next pronoun use
// ("it", "she", "they", ...).
func (e *Environment) SetPronoun(name string) {
	e.pronoun = name
}

// ResolvePronoun returns the name the most recent pronoun use refers to.
func (e *Environment) ResolvePronoun() (string, bool) {
	if e.pronoun == "" {
		return "", false
	}
	return e.pronoun, true
}
