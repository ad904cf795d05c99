package domain

// Toggle adds id when absent and removes it when present. Insertion order of
// the surviving ids is preserved, which keeps the persisted sequence stable
// across unrelated toggles.
func Toggle(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(append([]string{}, ids[:i]...), ids[i+1:]...)
		}
	}
	return append(append([]string{}, ids...), id)
}

func Contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
