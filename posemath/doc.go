// Package posemath provides the 3-D vector, line, and circular/helical arc
// primitives consumed by the segment engine, plus the 9-axis Cartesian pose
// type used at the planner's public boundary.
//
// What is posemath?
//
//	A small, dependency-free kernel that answers exactly the geometric
//	questions the trajectory planner needs:
//	  - unit-vector lines: length, point-at-arc-length, start/end tangent
//	  - circles and helices: same questions, plus center/normal/radius
//	  - spherical blend arcs: represented as a Circle with a short sweep
//
// Why a dedicated kernel?
//
//   - Minimal API   — only the operations the planner's append and cycle
//     pipelines actually call
//   - Deterministic — no hidden global state, no randomness
//   - Pure Go       — no cgo, no third-party dependency
//
// Under the hood:
//
//	vec3.go   — Vec3 arithmetic (Add/Sub/Scale/Dot/Cross/Norm/Unit)
//	pose.go   — Pose9, the (x,y,z,a,b,c,u,v,w) tuple at the API boundary
//	line.go   — unit-vector line segment geometry
//	circle.go — circular/helical arc geometry
package posemath
