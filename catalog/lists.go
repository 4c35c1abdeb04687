package catalog

// ListType tells where the options of a list come from.
type ListType string

const (
	ListSimple  ListType = "simple"
	ListKeyed   ListType = "keyed"
	ListRuntime ListType = "runtime" // filled by the application at run time
)

// ListSource describes the options offered for a field, typically rendered
// as a drop-down.
type ListSource struct {
	Name       string     `json:"name" yaml:"name"`
	ListType   ListType   `json:"listType" yaml:"listType"`
	IsKeyed    bool       `json:"isKeyed,omitempty" yaml:"isKeyed,omitempty"`
	List       SimpleList `json:"list,omitempty" yaml:"list,omitempty"`
	KeyedLists KeyedList  `json:"keyedLists,omitempty" yaml:"keyedLists,omitempty"`
}

// ListEntry is one option: the internal value and the text displayed for it.
// Value is a string or a number.
type ListEntry struct {
	Value any    `json:"value" yaml:"value"`
	Text  string `json:"text" yaml:"text"`
}

// SimpleList is a flat list of options.
type SimpleList []ListEntry

// KeyedList holds one list per key of another field, like states per country.
type KeyedList map[string]SimpleList

// KeyedLists is a collection of keyed lists.
type KeyedLists map[string]KeyedList
