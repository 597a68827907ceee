package caseset

// yamlCase is the intermediate struct for parsing case files. Pointer fields
// distinguish a missing key from a legal empty-string value: empty text and
// empty pattern are valid cases, an absent key is not.
type yamlCase struct {
	Name     *string `yaml:"name"`
	Text     *string `yaml:"text"`
	Pattern  *string `yaml:"pattern"`
	Expected *string `yaml:"expected"`
}

// yamlCaseFile represents the top-level structure of a case YAML file:
// a "cases" array, so one file may carry many cases.
type yamlCaseFile struct {
	Cases []yamlCase `yaml:"cases"`
}
