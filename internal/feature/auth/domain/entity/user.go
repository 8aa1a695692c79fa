// Package entity はauthフィーチャーのドメインモデルを定義します。
package entity

// User は登録済みユーザーを表します。
// Passwordはbcryptでハッシュ化された値のみを保持します。
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"size:255;not null;uniqueIndex"`
	Password string `gorm:"size:255;not null"`
}
