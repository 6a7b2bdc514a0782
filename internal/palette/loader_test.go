package palette

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"
	"testing"
)

type stubRepository struct{}

func (s *stubRepository) FetchImage(ctx context.Context, imageRef string) (image.Image, error) {
	if strings.Contains(imageRef, "missing") {
		return nil, fmt.Errorf("image not found: %s", imageRef)
	}
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return img, nil
}

func (s *stubRepository) ValidateImageRef(imageRef string) error {
	return nil
}

type failingExtractor struct{}

func (f *failingExtractor) Extract(img image.Image, count int) ([]ColorSwatch, error) {
	return nil, fmt.Errorf("extraction failed")
}

func TestLoadBatch_PreservesOrder(t *testing.T) {
	loader := NewBatchLoader(&stubRepository{}, NewKMeansExtractor(), 5, 4, nil)

	refs := []string{
		"https://example.com/a.png",
		"https://example.com/b.png",
		"https://example.com/c.png",
	}
	palettes := loader.LoadBatch(context.Background(), refs)

	if len(palettes) != len(refs) {
		t.Fatalf("Expected %d palettes, got %d", len(refs), len(palettes))
	}
	for i, p := range palettes {
		if p.ImageRef != refs[i] {
			t.Errorf("Palette %d has ref %s, expected %s", i, p.ImageRef, refs[i])
		}
		if len(p.Swatches) != 1 {
			t.Errorf("Palette %d: expected 1 swatch for solid image, got %d", i, len(p.Swatches))
		}
	}
}

func TestLoadBatch_FetchFailureYieldsEmptyPalette(t *testing.T) {
	loader := NewBatchLoader(&stubRepository{}, NewKMeansExtractor(), 5, 2, nil)

	refs := []string{
		"https://example.com/good.png",
		"https://example.com/missing.png",
		"https://example.com/also-good.png",
	}
	palettes := loader.LoadBatch(context.Background(), refs)

	if len(palettes) != 3 {
		t.Fatalf("Expected 3 palettes, got %d", len(palettes))
	}

	if len(palettes[0].Swatches) == 0 {
		t.Error("Expected swatches for the first fetchable image")
	}
	if palettes[1].ImageRef != refs[1] {
		t.Errorf("Placeholder ref = %s, expected %s", palettes[1].ImageRef, refs[1])
	}
	if len(palettes[1].Swatches) != 0 {
		t.Errorf("Expected empty placeholder for failed fetch, got %d swatches", len(palettes[1].Swatches))
	}
	if len(palettes[2].Swatches) == 0 {
		t.Error("Expected swatches for the last fetchable image")
	}
}

func TestLoadBatch_ExtractionFailureYieldsEmptyPalette(t *testing.T) {
	loader := NewBatchLoader(&stubRepository{}, &failingExtractor{}, 5, 2, nil)

	palettes := loader.LoadBatch(context.Background(), []string{"https://example.com/a.png"})

	if len(palettes) != 1 {
		t.Fatalf("Expected 1 palette, got %d", len(palettes))
	}
	if len(palettes[0].Swatches) != 0 {
		t.Errorf("Expected empty placeholder after extraction failure, got %d swatches", len(palettes[0].Swatches))
	}
}

func TestLoadBatch_EmptyBatch(t *testing.T) {
	loader := NewBatchLoader(&stubRepository{}, NewKMeansExtractor(), 5, 2, nil)

	palettes := loader.LoadBatch(context.Background(), nil)
	if len(palettes) != 0 {
		t.Errorf("Expected no palettes for an empty batch, got %d", len(palettes))
	}
}

func TestLoadBatch_ConcurrentBatches(t *testing.T) {
	loader := NewBatchLoader(&stubRepository{}, NewKMeansExtractor(), 5, 2, nil)

	refsA := []string{
		"https://example.com/a1.png",
		"https://example.com/missing-a.png",
		"https://example.com/a2.png",
	}
	refsB := []string{
		"https://example.com/b1.png",
		"https://example.com/b2.png",
	}

	var wg sync.WaitGroup
	var batchA, batchB []ImagePalette

	wg.Add(2)
	go func() {
		defer wg.Done()
		batchA = loader.LoadBatch(context.Background(), refsA)
	}()
	go func() {
		defer wg.Done()
		batchB = loader.LoadBatch(context.Background(), refsB)
	}()
	wg.Wait()

	if len(batchA) != 3 || len(batchB) != 2 {
		t.Fatalf("Expected batch sizes 3 and 2, got %d and %d", len(batchA), len(batchB))
	}
	for i, p := range batchA {
		if p.ImageRef != refsA[i] {
			t.Errorf("Batch A position %d has ref %s, expected %s", i, p.ImageRef, refsA[i])
		}
	}
	if len(batchA[1].Swatches) != 0 {
		t.Errorf("Expected empty placeholder in batch A, got %d swatches", len(batchA[1].Swatches))
	}
	for i, p := range batchB {
		if p.ImageRef != refsB[i] {
			t.Errorf("Batch B position %d has ref %s, expected %s", i, p.ImageRef, refsB[i])
		}
		if len(p.Swatches) != 1 {
			t.Errorf("Batch B position %d: expected 1 swatch, got %d", i, len(p.Swatches))
		}
	}
}
