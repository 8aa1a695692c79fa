// Package domain はnutritionフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrFactNotFound は指定された食品名の栄養成分が未登録であることを示します。
	ErrFactNotFound = errors.New("nutrition fact not found")
)
