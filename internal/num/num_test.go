package num

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d", got)
	}
	if got := Clamp(0.75, 0.0, 1.0); got != 0.75 {
		t.Errorf("Clamp(0.75,0,1) = %v", got)
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(-7); got != 7 {
		t.Errorf("Abs(-7) = %d", got)
	}
	if got := Abs(7); got != 7 {
		t.Errorf("Abs(7) = %d", got)
	}
	if got := Abs(-1.5); got != 1.5 {
		t.Errorf("Abs(-1.5) = %v", got)
	}
	if got := Abs(0); got != 0 {
		t.Errorf("Abs(0) = %d", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10.0, 20.0, 0); got != 10 {
		t.Errorf("Lerp t=0 = %v", got)
	}
	if got := Lerp(10.0, 20.0, 1); got != 20 {
		t.Errorf("Lerp t=1 = %v", got)
	}
	if got := Lerp(10.0, 20.0, 0.5); got != 15 {
		t.Errorf("Lerp t=0.5 = %v", got)
	}
	if got := Lerp(10.0, 20.0, -0.5); got != 5 {
		t.Errorf("Lerp extrapolation = %v", got)
	}
}
