package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func assertMatNear(t *testing.T, name string, got Mat4, want [16]float32) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s: element %d = %f, want %f", name, i, got[i], want[i])
		}
	}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M, got %v", result)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTranslateAfterScale(t *testing.T) {
	m := Translate(10, 20, 30).Mul(Scale(2, 2, 2))
	got := transformPoint(m, Vec3{1, 2, 3})
	want := Vec3{12, 24, 36}
	if got != want {
		t.Errorf("T*S applied to point: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := transformPoint(m, Vec3{1, 0, 0})

	// (1,0,0) turns into (0,0,-1)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotationsMatchMathgl(t *testing.T) {
	angle := Radians(30)
	assertMatNear(t, "RotateX", RotateX(angle), mgl32.HomogRotate3DX(angle))
	assertMatNear(t, "RotateY", RotateY(angle), mgl32.HomogRotate3DY(angle))
	assertMatNear(t, "RotateZ", RotateZ(angle), mgl32.HomogRotate3DZ(angle))
}

func TestPerspectiveMatchesMathgl(t *testing.T) {
	fov := Radians(45)
	got := Perspective(fov, 16.0/9.0, 0.05, 350)
	want := mgl32.Perspective(fov, 16.0/9.0, 0.05, 350)
	assertMatNear(t, "Perspective", got, want)

	if got[11] != -1 || got[15] != 0 {
		t.Errorf("Perspective w row should be (0,0,-1,0), got [11]=%f [15]=%f", got[11], got[15])
	}
}

func TestLookAtMatchesMathgl(t *testing.T) {
	got := LookAt(Vec3{0, 2, 2}, Vec3{}, Vec3{0, 1, 0})
	want := mgl32.LookAtV(mgl32.Vec3{0, 2, 2}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assertMatNear(t, "LookAt", got, want)
}

func TestInverse(t *testing.T) {
	m := Translate(1, -2, 3).
		Mul(RotateZ(Radians(20))).
		Mul(RotateY(Radians(-35))).
		Mul(RotateX(Radians(50))).
		Mul(Scale(2, 1, 0.5))

	assertMatNear(t, "M * inverse(M)", m.Mul(m.Inverse()), Identity())
	assertMatNear(t, "Inverse vs mathgl", m.Inverse(), mgl32.Mat4(m).Inv())
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if zero.Inverse() != Identity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestTranspose(t *testing.T) {
	var m Mat4
	for i := range m {
		m[i] = float32(i)
	}
	tr := m.Transpose()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if tr[row*4+col] != m[col*4+row] {
				t.Fatalf("Transpose mismatch at col %d row %d", col, row)
			}
		}
	}
	if tr.Transpose() != m {
		t.Error("double transpose should be the original")
	}
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	m := Scale(2, 1, 0.5)
	n := m.NormalMatrix()

	want := Identity()
	want[0], want[5], want[10] = 0.5, 1, 2
	assertMatNear(t, "NormalMatrix(scale 2,1,0.5)", n, want)

	// A normal of the plane x + y = const stays perpendicular to the
	// transformed tangent after the transform.
	tangent := transformDirection(m, Vec3{1, -1, 0})
	normal := transformDirection(n, Vec3{1, 1, 0})
	if d := tangent.Dot(normal); abs(d) > epsilon {
		t.Errorf("transformed normal not perpendicular, dot = %f", d)
	}
}

func TestNormalMatrixMatchesMathgl(t *testing.T) {
	m := Translate(0.5, 0, -1).Mul(RotateX(Radians(90))).Mul(Scale(3, 0.25, 1))
	want := mgl32.Mat4(m).Inv().Transpose()
	assertMatNear(t, "NormalMatrix", m.NormalMatrix(), want)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func transformPoint(m Mat4, p Vec3) Vec3 {
	v := mgl32.TransformCoordinate(mgl32.Vec3{p.X, p.Y, p.Z}, mgl32.Mat4(m))
	return Vec3{v[0], v[1], v[2]}
}

func transformDirection(m Mat4, d Vec3) Vec3 {
	v := mgl32.TransformNormal(mgl32.Vec3{d.X, d.Y, d.Z}, mgl32.Mat4(m))
	return Vec3{v[0], v[1], v[2]}
}
