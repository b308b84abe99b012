package country

// codeEntry is one row of a code table.
type codeEntry[C ~string] struct {
	name string
	code C
}

// resolve returns the code whose symbolic name equals name. Both tables share
// their symbolic names, so a miss means the tables drifted apart.
func resolve[C ~string](name string, table []codeEntry[C]) (C, error) {
	for _, entry := range table {
		if entry.name == name {
			return entry.code, nil
		}
	}
	var zero C
	return zero, codeNotFound(name)
}

func indexByCode[C ~string](table []codeEntry[C]) map[C]string {
	index := make(map[C]string, len(table))
	for _, entry := range table {
		index[entry.code] = entry.name
	}
	return index
}

func codesOf[C ~string](table []codeEntry[C]) []C {
	codes := make([]C, len(table))
	for i, entry := range table {
		codes[i] = entry.code
	}
	return codes
}
