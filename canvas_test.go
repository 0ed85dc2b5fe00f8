package ink

import (
	"image"
	"testing"
)

func TestNewCanvasClonesSource(t *testing.T) {
	src := solidPixmap(6, 6, NewColor(40, 40, 40, 255))
	c := NewCanvas(src)

	if !c.Committed().Equal(src) || !c.Merged().Equal(src) {
		t.Fatal("committed and merged must start as copies of the source")
	}
	if !isTransparent(c.Staged()) {
		t.Error("staged must start fully transparent")
	}

	// The source stays independent of the canvas.
	src.Fill(White)
	if c.Committed().Equal(src) {
		t.Error("canvas shares the source buffer")
	}
}

func TestCanvasBeginStagedBaseline(t *testing.T) {
	c := NewCanvas(NewPixmap(4, 4))
	c.Committed().Fill(NewColor(9, 9, 9, 255))

	c.beginStaged()
	if !c.Merged().Equal(c.Committed()) {
		t.Error("beginStaged must baseline merged from committed")
	}

	// Second call is a no-op: the preview baseline is taken once.
	c.Merged().SetColor(0, 0, White)
	c.beginStaged()
	if c.Merged().ColorAt(0, 0) != White {
		t.Error("repeated beginStaged re-copied the baseline")
	}
}

func TestCanvasResetStaged(t *testing.T) {
	c := NewCanvas(NewPixmap(4, 4))
	c.Committed().Fill(NewColor(7, 7, 7, 255))
	c.beginStaged()
	c.Staged().Fill(NewColor(1, 2, 3, 200))
	c.pushMerge(image.Rect(0, 0, 2, 2))

	c.resetStaged()
	if !isTransparent(c.Staged()) {
		t.Error("staged not cleared")
	}
	if !c.merge.Empty() {
		t.Error("merge queue not drained")
	}
	if c.stagedActive {
		t.Error("stagedActive flag not reset")
	}
	if !c.Merged().Equal(c.Committed()) {
		t.Error("merged preview not resynced to committed")
	}
}
