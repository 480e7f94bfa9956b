package ports

// DefinitionFileFinder defines the contract for locating the default definition file.
type DefinitionFileFinder interface {
	Find() (string, error)
}
