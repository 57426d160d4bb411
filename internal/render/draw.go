package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"scene-viewer/internal/camera"
	"scene-viewer/internal/scene"
)

// Stats describes the last Draw call.
type Stats struct {
	Drawn   int
	Skipped int
}

// Draw renders every object of s from cam. cam's matrices must be current
// (CalculateMatrices). Objects whose name has no loaded model are skipped and logged once.
func (r *Registry) Draw(s *scene.Scene, cam *camera.Camera) Stats {
	var st Stats
	view, proj := cam.View, cam.Projection

	rl.BeginMode3D(raylibCamera(cam))
	// Replace raylib's own camera matrices so its internal MVP matches the one we upload.
	rl.SetMatrixProjection(toMatrix(proj))
	rl.SetMatrixModelview(toMatrix(view))
	rl.DisableBackfaceCulling()

	light := view.Mul4x1(mgl32.Vec3(r.LightPosition).Vec4(1)).Vec3()
	for _, p := range r.programs {
		if p.lightPosLoc >= 0 {
			rl.SetShaderValue(p.shader, p.lightPosLoc, []float32{light[0], light[1], light[2]}, rl.ShaderUniformVec3)
		}
	}

	s.Each(func(o scene.Object) {
		m, ok := r.models[o.Name]
		if !ok {
			st.Skipped++
			if !r.skipped[o.Name] {
				r.skipped[o.Name] = true
				r.log.Logf("no model named %q, skipping", o.Name)
			}
			return
		}
		mv, mvp := o.Transforms(view, proj)
		if m.prog.mvpLoc >= 0 {
			rl.SetShaderValueMatrix(m.prog.shader, m.prog.mvpLoc, toMatrix(mvp))
		}
		if m.prog.mvLoc >= 0 {
			rl.SetShaderValueMatrix(m.prog.shader, m.prog.mvLoc, toMatrix(mv))
		}
		m.model.Transform = toMatrix(o.ModelMatrix())
		rl.DrawModel(m.model, rl.Vector3{}, 1, rl.White)
		st.Drawn++
	})

	rl.EndMode3D()
	return st
}

// raylibCamera mirrors cam for BeginMode3D, which sets up depth testing and the matrix stack.
func raylibCamera(cam *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(cam.Eye[0], cam.Eye[1], cam.Eye[2]),
		Target:     rl.NewVector3(cam.Target[0], cam.Target[1], cam.Target[2]),
		Up:         rl.NewVector3(cam.WorldUp[0], cam.WorldUp[1], cam.WorldUp[2]),
		Fovy:       mgl32.RadToDeg(cam.FOV),
		Projection: rl.CameraPerspective,
	}
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout, which stores the
// same elements in the same order (M0..M3 is the first column).
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
