// Package transform implements the payload transformation: uppercase each
// element and interleave the two lists into a single joined string.
package transform

import "strings"

// Separator joins the merged elements of the final output.
const Separator = ", "

// Apply transforms a single element.
func Apply(s string) string {
	return strings.ToUpper(s)
}

// ApplyAll transforms every element of the list.
func ApplyAll(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = Apply(s)
	}
	return out
}

// Merge interleaves two already transformed lists element by element,
// starting with the second list, then appends the unpaired tail of the
// longer list in its original order. Elements are joined with Separator.
func Merge(list1, list2 []string) string {
	n := len(list1)
	if len(list2) < n {
		n = len(list2)
	}
	out := make([]string, 0, len(list1)+len(list2))
	for i := 0; i < n; i++ {
		out = append(out, list2[i], list1[i])
	}
	out = append(out, list1[n:]...)
	out = append(out, list2[n:]...)
	return strings.Join(out, Separator)
}

// Interleave transforms both lists and merges them.
func Interleave(list1, list2 []string) string {
	return Merge(ApplyAll(list1), ApplyAll(list2))
}
