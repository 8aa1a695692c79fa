// Package entity はfooddetectionフィーチャーのドメインモデルを定義します。
package entity

// Label は外部ディテクターが返す1件のラベル検出結果を表します。
// Confidenceは0〜100のスコアです。
type Label struct {
	Name       string   // 検出されたラベル名
	Confidence float64  // 信頼度スコア（0 ~ 100）
	Parents    []string // 親ラベル名（上位から順）
	Instances  []Instance
}

// Instance はラベルの空間的な出現1件を表します。
// 各座標は画像サイズに対する0〜1の比率です。
type Instance struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}
