package exceptions

import "fmt"

// legacyCodes is the Web IDL DOMException legacy code table. Names absent
// from this table (including every application-defined name) resolve to
// code 0 (spec.md §4.7, §8.1 "DOMException code lookup").
var legacyCodes = map[string]int{
	"IndexSizeError":              1,
	"HierarchyRequestError":       3,
	"WrongDocumentError":          4,
	"InvalidCharacterError":       5,
	"NoModificationAllowedError":  7,
	"NotFoundError":               8,
	"NotSupportedError":           9,
	"InUseAttributeError":         10,
	"InvalidStateError":           11,
	"SyntaxError":                 12,
	"InvalidModificationError":    13,
	"NamespaceError":              14,
	"InvalidAccessError":          15,
	"TypeMismatchError":           17,
	"SecurityError":               18,
	"NetworkError":                19,
	"AbortError":                  20,
	"URLMismatchError":            21,
	"QuotaExceededError":          22,
	"TimeoutError":                23,
	"InvalidNodeTypeError":        24,
	"DataCloneError":              25,
	"EncodingError":             0,
	"NotReadableError":          0,
	"UnknownError":              0,
	"ConstraintError":           0,
	"DataError":                 0,
	"TransactionInactiveError":  0,
	"ReadOnlyError":             0,
	"VersionError":              0,
	"OperationError":            0,
	"NotAllowedError":           0,
}

// DOMException is the base exception type Web APIs throw for named,
// platform-defined failures (spec.md §4.7). Its serialization carries name,
// message, and code; derived interfaces append their own fields.
type DOMException struct {
	Name    string
	Message string
}

// NewDOMException constructs a DOMException with the given name and
// message. name need not appear in the legacy code table — any identifier
// is accepted, and Code() simply returns 0 for unrecognized names.
func NewDOMException(name, message string) *DOMException {
	return &DOMException{Name: name, Message: message}
}

// Code returns the legacy numeric code associated with e.Name, or 0 if
// e.Name has no entry in the table.
func (e *DOMException) Code() int {
	return legacyCodes[e.Name]
}

func (e *DOMException) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// Serialize returns the {name, message, code} triple a DOMException
// serializes to (spec.md §4.7): the minimal payload every DOMException
// carries, before a derived interface's extra fields are appended.
func (e *DOMException) Serialize() map[string]any {
	return map[string]any{
		"name":    e.Name,
		"message": e.Message,
		"code":    e.Code(),
	}
}
