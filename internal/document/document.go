package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
	"github.com/telkomindonesia/openapi-comments/internal/comment"
	"gopkg.in/yaml.v3"
)

var ErrTargetNotFound = errors.New("target not found")

type Document struct {
	docv3  *libopenapi.DocumentModel[v3.Document]
	logger *slog.Logger
}

func Load(p string, logger *slog.Logger) (d *Document, err error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("fail to read file: %w", err)
	}
	specDir, err := filepath.Abs(filepath.Dir(p))
	if err != nil {
		return nil, fmt.Errorf("fail to determine spec file base directory: %w", err)
	}
	return LoadBytes(b, specDir, logger)
}

func LoadBytes(b []byte, basePath string, logger *slog.Logger) (d *Document, err error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}

	doc, err := libopenapi.NewDocumentWithConfiguration(b, &datamodel.DocumentConfiguration{
		BasePath:                basePath,
		ExtractRefsSequentially: true,
		Logger:                  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("fail to load openapi spec: %w", err)
	}

	docv3, errs := doc.BuildV3Model()
	if err = errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("fail to build v3 openapi doc: %w", err)
	}

	return &Document{docv3: docv3, logger: logger}, nil
}

func (d *Document) Comments(t Target, key string) (comment.List, error) {
	ext, err := d.extensions(t)
	if err != nil {
		return nil, err
	}
	return comment.FromExtensions(ext, key)
}

// SetComments replaces the comment list stored at t. Writing to the info
// target creates the info object when the document has none.
func (d *Document) SetComments(t Target, key string, comments comment.List) (err error) {
	ext, err := d.extensions(t)
	if err != nil {
		return err
	}
	ext, err = comment.ToExtensions(ext, key, comments)
	if err != nil {
		return err
	}

	if t.IsInfo() {
		if d.docv3.Model.Info == nil {
			d.docv3.Model.Info = &base.Info{}
		}
		d.docv3.Model.Info.Extensions = ext
	} else {
		op, err := d.operation(t)
		if err != nil {
			return err
		}
		op.Extensions = ext
	}

	d.logger.Debug("comments updated", slog.String("target", t.String()), slog.Int("count", len(comments)))
	return nil
}

// Targets lists the info object followed by every operation, in path order.
func (d *Document) Targets() (ts []Target) {
	ts = append(ts, InfoTarget)
	if d.docv3.Model.Paths == nil || d.docv3.Model.Paths.PathItems == nil {
		return
	}
	for pair := range orderedmap.Iterate(context.Background(), d.docv3.Model.Paths.PathItems) {
		for _, m := range methods {
			if operation(pair.Value(), m) != nil {
				ts = append(ts, Target{Path: pair.Key(), Method: m})
			}
		}
	}
	return
}

func (d *Document) Render() ([]byte, error) {
	b, err := d.docv3.Model.Render()
	if err != nil {
		return nil, fmt.Errorf("fail to render openapi doc: %w", err)
	}
	return b, nil
}

func (d *Document) extensions(t Target) (*orderedmap.Map[string, *yaml.Node], error) {
	if t.IsInfo() {
		if d.docv3.Model.Info == nil {
			return nil, nil
		}
		return d.docv3.Model.Info.Extensions, nil
	}

	op, err := d.operation(t)
	if err != nil {
		return nil, err
	}
	return op.Extensions, nil
}

func (d *Document) operation(t Target) (*v3.Operation, error) {
	if d.docv3.Model.Paths == nil || d.docv3.Model.Paths.PathItems == nil {
		return nil, fmt.Errorf("path '%s': %w", t.Path, ErrTargetNotFound)
	}
	p, ok := d.docv3.Model.Paths.PathItems.Get(t.Path)
	if !ok || p == nil {
		return nil, fmt.Errorf("path '%s': %w", t.Path, ErrTargetNotFound)
	}
	op := operation(p, t.Method)
	if op == nil {
		return nil, fmt.Errorf("operation '%s': %w", t, ErrTargetNotFound)
	}
	return op, nil
}

// Validate reloads the rendered document with kin-openapi and validates it.
func Validate(ctx context.Context, b []byte) error {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false

	doc, err := loader.LoadFromData(b)
	if err != nil {
		return fmt.Errorf("fail to reload openapi doc with kin: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return fmt.Errorf("invalid openapi doc: %w", err)
	}
	return nil
}
