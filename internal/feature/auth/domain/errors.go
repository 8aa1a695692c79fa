// Package domain はauthフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrEmailAlreadyExists は同じメールアドレスのユーザーが既に存在することを示します。
	// サインアップ時の重複作成で返されます。
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound は条件に一致するユーザーが存在しないことを示します。
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials はメールアドレスまたはパスワードが不正であることを示します。
	ErrInvalidCredentials = errors.New("invalid email or password")
)
