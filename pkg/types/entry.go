package types

// ProtectedField holds a string value together with the single flag
// that tells the serializer whether to store it obfuscated under the
// container's protection scheme.
type ProtectedField struct {
	Value     string
	Protected bool
}

// Entry is one credential record. Title, Username and Password are
// always present; URL and Notes are optional and empty means absent.
type Entry struct {
	ID       Identifier
	Title    string
	Username string
	Password ProtectedField
	URL      string
	Notes    string
	Times    Times
}
