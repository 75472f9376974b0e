package vars

// StrToBool is ParseBool with unrecognized text read as false.
func StrToBool(str string) bool {
	v, _ := ParseBool(str)
	return v
}
