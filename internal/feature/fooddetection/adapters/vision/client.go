// Package vision はGoogle Cloud Vision APIを使用したラベル検出クライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/domain/entity"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/usecase"
)

const (
	// maxLabelResults はラベル検出の最大取得件数です。
	maxLabelResults = 20
	// maxObjectResults はオブジェクト位置検出の最大取得件数です。
	maxObjectResults = 10
)

// VisionLabelDetector はGoogle Cloud Vision APIを使用してラベルを検出します。
// ラベル検出に加えてオブジェクト位置検出も行い、バウンディングボックス付きの
// ラベルを合成します。スコアはパイプラインの契約に合わせて0〜100に変換します。
type VisionLabelDetector struct {
	client *gvision.ImageAnnotatorClient
}

// VisionLabelDetectorがLabelDetectorを実装していることをコンパイル時に検証します。
var _ usecase.LabelDetector = (*VisionLabelDetector)(nil)

// NewVisionLabelDetector はADCを使用してVisionLabelDetectorの新しいインスタンスを生成します。
func NewVisionLabelDetector(ctx context.Context) (*VisionLabelDetector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionLabelDetector{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionLabelDetector) Close() error {
	return v.client.Close()
}

// DetectLabels は画像バイト列からラベルバッチを検出します。
func (v *VisionLabelDetector) DetectLabels(ctx context.Context, imageData []byte) ([]entity.Label, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: maxLabelResults},
					{Type: visionpb.Feature_OBJECT_LOCALIZATION, MaxResults: maxObjectResults},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return nil, nil
	}

	r := resp.Responses[0]
	if r.Error != nil {
		return nil, fmt.Errorf("vision API error: %s", r.Error.Message)
	}

	labels := make([]entity.Label, 0, len(r.LabelAnnotations)+len(r.LocalizedObjectAnnotations))
	for _, a := range r.LabelAnnotations {
		labels = append(labels, entity.Label{
			Name:       a.Description,
			Confidence: float64(a.Score) * 100,
		})
	}
	for _, o := range r.LocalizedObjectAnnotations {
		label := entity.Label{
			Name:       o.Name,
			Confidence: float64(o.Score) * 100,
		}
		if box, ok := boundingBoxOf(o.BoundingPoly); ok {
			label.Instances = []entity.Instance{box}
		}
		labels = append(labels, label)
	}

	return labels, nil
}

// boundingBoxOf は正規化頂点列から外接矩形を計算します。
// 頂点が無い場合はfalseを返します。
func boundingBoxOf(poly *visionpb.BoundingPoly) (entity.Instance, bool) {
	if poly == nil || len(poly.NormalizedVertices) == 0 {
		return entity.Instance{}, false
	}

	minX := float64(poly.NormalizedVertices[0].X)
	minY := float64(poly.NormalizedVertices[0].Y)
	maxX, maxY := minX, minY
	for _, v := range poly.NormalizedVertices[1:] {
		x, y := float64(v.X), float64(v.Y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	return entity.Instance{
		Left:   minX,
		Top:    minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}, true
}
