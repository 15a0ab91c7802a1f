// Package loaders turns external scene descriptions into the in-memory data
// model: a declarative JSON format carrying the full scene, and GLB files
// carrying bare geometry.
package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tvetanov/go-bucket-raytracer/pkg/core"
	"github.com/tvetanov/go-bucket-raytracer/pkg/geometry"
	"github.com/tvetanov/go-bucket-raytracer/pkg/material"
	"github.com/tvetanov/go-bucket-raytracer/pkg/scene"
)

type sceneDocument struct {
	Settings  settingsCfg   `json:"settings"`
	Camera    cameraCfg     `json:"camera"`
	Lights    []lightCfg    `json:"lights"`
	Materials []materialCfg `json:"materials"`
	Objects   []objectCfg   `json:"objects"`
}

type settingsCfg struct {
	ImageSettings struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"image_settings"`
	BackgroundColor []core.Real `json:"background_color"`
	BucketSize      int         `json:"bucket_size"`
}

type cameraCfg struct {
	Position []core.Real `json:"position"`
	Matrix   []core.Real `json:"matrix"`
}

type lightCfg struct {
	Position  []core.Real `json:"position"`
	Intensity core.Real   `json:"intensity"`
}

type materialCfg struct {
	Type          string      `json:"type"`
	Albedo        []core.Real `json:"albedo"`
	SmoothShading bool        `json:"smooth_shading"`
	IOR           core.Real   `json:"ior"`
}

type objectCfg struct {
	Vertices      []core.Real `json:"vertices"`
	Triangles     []int       `json:"triangles"`
	MaterialIndex *int        `json:"material_index"`
}

// LoadScene reads a declarative scene file and assembles the render input.
// All structural validation happens here; the renderer assumes a valid
// scene.
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	return ParseScene(data)
}

// ParseScene builds a scene from the raw bytes of a scene document
func ParseScene(data []byte) (*scene.Scene, error) {
	var doc sceneDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene document: %w", err)
	}

	s := scene.New()

	if doc.Settings.ImageSettings.Width <= 0 || doc.Settings.ImageSettings.Height <= 0 {
		return nil, fmt.Errorf("settings.image_settings: width and height must be positive")
	}
	s.Settings.Width = doc.Settings.ImageSettings.Width
	s.Settings.Height = doc.Settings.ImageSettings.Height

	if doc.Settings.BackgroundColor != nil {
		bg, err := parseColor(doc.Settings.BackgroundColor)
		if err != nil {
			return nil, fmt.Errorf("settings.background_color: %w", err)
		}
		s.Settings.Background = bg
	}
	if doc.Settings.BucketSize > 0 {
		s.Settings.BucketSize = doc.Settings.BucketSize
	}

	if doc.Camera.Position != nil {
		pos, err := parseVector(doc.Camera.Position)
		if err != nil {
			return nil, fmt.Errorf("camera.position: %w", err)
		}
		s.Camera.Position = pos
	}
	if doc.Camera.Matrix != nil {
		if len(doc.Camera.Matrix) != 9 {
			return nil, fmt.Errorf("camera.matrix: expected 9 values, got %d", len(doc.Camera.Matrix))
		}
		var values [9]core.Real
		copy(values[:], doc.Camera.Matrix)
		s.Camera.SetMatrix(core.NewMatrixRowMajor(values))
	}

	for i, l := range doc.Lights {
		pos, err := parseVector(l.Position)
		if err != nil {
			return nil, fmt.Errorf("lights[%d].position: %w", i, err)
		}
		s.AddLight(core.Light{Position: pos, Intensity: l.Intensity})
	}

	for i, m := range doc.Materials {
		mat, err := parseMaterial(m)
		if err != nil {
			return nil, fmt.Errorf("materials[%d]: %w", i, err)
		}
		s.AddMaterial(mat)
	}

	for i, o := range doc.Objects {
		mesh, err := parseObject(o, s.Materials)
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", i, err)
		}
		s.AddMesh(mesh)
	}

	return s, nil
}

func parseMaterial(cfg materialCfg) (core.Material, error) {
	albedo := core.NewColor(1, 1, 1)
	if cfg.Albedo != nil {
		parsed, err := parseColor(cfg.Albedo)
		if err != nil {
			return nil, fmt.Errorf("albedo: %w", err)
		}
		albedo = parsed
	}

	switch cfg.Type {
	case "constant":
		m := material.NewConstant(albedo)
		m.SmoothShading = cfg.SmoothShading
		return m, nil
	case "diffuse":
		m := material.NewDiffuse(albedo)
		m.SmoothShading = cfg.SmoothShading
		return m, nil
	case "reflective":
		m := material.NewReflective(albedo)
		m.SmoothShading = cfg.SmoothShading
		return m, nil
	case "refractive":
		m := material.NewRefractive(albedo, cfg.IOR)
		m.SmoothShading = cfg.SmoothShading
		return m, nil
	default:
		return nil, fmt.Errorf("unknown material type %q", cfg.Type)
	}
}

func parseObject(cfg objectCfg, materials []core.Material) (*geometry.Mesh, error) {
	if cfg.Vertices == nil {
		return nil, fmt.Errorf("missing vertices array")
	}
	if len(cfg.Vertices)%3 != 0 {
		return nil, fmt.Errorf("vertex values count %d is not a multiple of 3", len(cfg.Vertices))
	}
	if len(cfg.Triangles)%3 != 0 {
		return nil, fmt.Errorf("triangle indices count %d is not a multiple of 3", len(cfg.Triangles))
	}

	vertices := make([]core.Vector, len(cfg.Vertices)/3)
	for i := range vertices {
		vertices[i] = core.NewVector(cfg.Vertices[i*3], cfg.Vertices[i*3+1], cfg.Vertices[i*3+2])
	}

	for i, index := range cfg.Triangles {
		if index < 0 || index >= len(vertices) {
			return nil, fmt.Errorf("triangle index %d at position %d out of range [0, %d)", index, i, len(vertices))
		}
	}

	var mat core.Material
	if cfg.MaterialIndex != nil {
		if *cfg.MaterialIndex < 0 || *cfg.MaterialIndex >= len(materials) {
			return nil, fmt.Errorf("material_index %d out of range [0, %d)", *cfg.MaterialIndex, len(materials))
		}
		mat = materials[*cfg.MaterialIndex]
	}

	return geometry.NewMesh(vertices, cfg.Triangles, mat), nil
}

func parseVector(values []core.Real) (core.Vector, error) {
	if len(values) != 3 {
		return core.Vector{}, fmt.Errorf("expected 3 values, got %d", len(values))
	}
	return core.NewVector(values[0], values[1], values[2]), nil
}

func parseColor(values []core.Real) (core.Color, error) {
	if len(values) != 3 {
		return core.Color{}, fmt.Errorf("expected 3 values, got %d", len(values))
	}
	return core.NewColor(values[0], values[1], values[2]), nil
}
