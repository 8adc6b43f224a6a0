package utils

import "strings"

// StringPrefixTree indexes multi-word phrases by their token sequence so a
// dictionary scan can find the longest phrase starting at any token position
// in a single left-to-right pass.
type StringPrefixTree struct {
	Root StringPrefixTreeNode
}

type StringPrefixTreeNode struct {
	Text     string
	Children map[string]*StringPrefixTreeNode
}

func (pTree *StringPrefixTree) Add(phrase string) {
	phrase = strings.TrimSpace(strings.ToLower(phrase))
	tokens := strings.Split(phrase, " ")
	if len(tokens) == 0 || len(phrase) == 0 {
		return
	}

	node := &pTree.Root
	for _, token := range tokens {
		if node.Children == nil {
			node.Children = make(map[string]*StringPrefixTreeNode)
		}
		childNode, isOk := node.Children[token]
		if !isOk {
			childNode = &StringPrefixTreeNode{}
			node.Children[token] = childNode
		}
		node = childNode
	}

	node.Text = phrase
}

// LongestMatch walks tokens starting at offset and returns the longest stored
// phrase that matches, with the number of tokens it covers. Returns false when
// no phrase starts at the offset.
func (pTree *StringPrefixTree) LongestMatch(tokens []string, offset int) (string, int, bool) {
	node := &pTree.Root
	matched := ""
	length := 0

	for i := offset; i < len(tokens); i++ {
		childNode, isOk := node.Children[tokens[i]]
		if !isOk {
			break
		}
		node = childNode
		if len(node.Text) > 0 {
			matched = node.Text
			length = i - offset + 1
		}
	}

	if length == 0 {
		return "", 0, false
	}
	return matched, length, true
}
