// Package domain はfooddetectionフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrEmptyLabelBatch はラベルバッチが空のとき品質判定が要求されたことを示します。
	// 最大信頼度が定義できないため、デフォルト値で代替せず呼び出し側に通知します。
	ErrEmptyLabelBatch = errors.New("label batch is empty")
)
