// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/domain"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/domain/entity"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/usecase"
)

// userPostgres はUserRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserPostgresの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create はユーザーをデータベースに追加します。
// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrEmailAlreadyExistsを返します。
// 重複検出はGORMのエラー変換（TranslateError）に依存します。
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
