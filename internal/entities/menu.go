package entities

// MenuReplyKind classifies the resolved response to one user text input.
type MenuReplyKind string

const (
	MenuTopLevel     MenuReplyKind = "top_level"
	MenuSpecialty    MenuReplyKind = "specialty"
	MenuDirectLink   MenuReplyKind = "direct_link"
	MenuUnrecognized MenuReplyKind = "unrecognized"
)

// MenuOption is one numbered entry of a menu listing.
type MenuOption struct {
	Key   string
	Label string
}

// MenuReply is the outcome of resolving a single incoming message.
// Only the fields relevant to Kind are populated:
//   - MenuTopLevel: Options (specialty id + name)
//   - MenuSpecialty: SpecialtyName, Options (1-based index + practitioner)
//   - MenuDirectLink: SpecialtyName, Practitioner, URL
//   - MenuUnrecognized: nothing
type MenuReply struct {
	Kind          MenuReplyKind
	SpecialtyName string
	Practitioner  string
	URL           string
	Options       []MenuOption
}
