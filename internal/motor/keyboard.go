package motor

import (
	"unicode"
	"unicode/utf8"
)

// Hand 按键所属的手
type Hand int

const (
	HandNone Hand = iota
	HandLeft
	HandRight
)

func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	default:
		return "none"
	}
}

// Row QWERTY 键盘行，RowNone 表示不在字母区
type Row int

const (
	RowNone   Row = -1
	RowTop    Row = 0
	RowHome   Row = 1
	RowBottom Row = 2
)

var (
	handOf = map[rune]Hand{}
	rowOf  = map[rune]Row{}
)

func init() {
	for _, r := range "qwertasdfgzxcvb" {
		handOf[r] = HandLeft
	}
	for _, r := range "yuiophjklnm" {
		handOf[r] = HandRight
	}
	for _, r := range "qwertyuiop" {
		rowOf[r] = RowTop
	}
	for _, r := range "asdfghjkl" {
		rowOf[r] = RowHome
	}
	for _, r := range "zxcvbnm" {
		rowOf[r] = RowBottom
	}
}

// keyRune 单字符按键转小写；空串和 "Backspace"、"Shift" 这类多字符键名返回 utf8.RuneError
func keyRune(key string) rune {
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) {
		return utf8.RuneError
	}
	return unicode.ToLower(r)
}

// ClassifyHand 大小写不敏感，非字母键和功能键返回 HandNone
func ClassifyHand(key string) Hand {
	if h, ok := handOf[keyRune(key)]; ok {
		return h
	}
	return HandNone
}

func ClassifyRow(key string) Row {
	if r, ok := rowOf[keyRune(key)]; ok {
		return r
	}
	return RowNone
}

// IsRowTransition 两个键都在字母区且行不同
func IsRowTransition(a, b string) bool {
	ra, rb := ClassifyRow(a), ClassifyRow(b)
	return ra != RowNone && rb != RowNone && ra != rb
}
