package storage

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/ownfm/model/types"
	"github.com/viant/ownfm/service/approval"
)

const Name = "system/storage"

// Locator exposes the work directory and the current directory of a session.
type Locator interface {
	SessionID() string
	Root() string
	Cursor() string
}

// Service provides confined file system operations using viant/afs. Every
// mutating method resolves its arguments against the current directory and
// refuses targets outside the work directory before touching the file system.
type Service struct {
	fs      afs.Service
	locator Locator
	gate    approval.Service
}

// New creates a storage service bound to a session locator and a
// confirmation gate used for non-empty directory deletion.
func New(fs afs.Service, locator Locator, gate approval.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, locator: locator, gate: gate}
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "list",
			Description: "Lists immediate entries of a directory (current directory when name is empty).",
			Input:       reflect.TypeOf(&ListInput{}),
			Output:      reflect.TypeOf(&ListOutput{}),
		},
		{
			Name:        "createDir",
			Description: "Creates a directory inside the work directory.",
			Input:       reflect.TypeOf(&CreateDirInput{}),
			Output:      reflect.TypeOf(&CreateDirOutput{}),
		},
		{
			Name:        "deleteDir",
			Description: "Deletes a directory; a non-empty one is removed recursively after confirmation.",
			Input:       reflect.TypeOf(&DeleteDirInput{}),
			Output:      reflect.TypeOf(&DeleteDirOutput{}),
		},
		{
			Name:        "touch",
			Description: "Creates an empty file or updates the modification time of an existing one.",
			Input:       reflect.TypeOf(&TouchInput{}),
			Output:      reflect.TypeOf(&TouchOutput{}),
		},
		{
			Name:        "write",
			Description: "Replaces the whole content of a file.",
			Input:       reflect.TypeOf(&WriteInput{}),
			Output:      reflect.TypeOf(&WriteOutput{}),
		},
		{
			Name:        "deleteFile",
			Description: "Deletes a file.",
			Input:       reflect.TypeOf(&DeleteFileInput{}),
			Output:      reflect.TypeOf(&DeleteFileOutput{}),
		},
		{
			Name:        "copy",
			Description: "Copies a file with its mode and modification time, overwriting the destination.",
			Input:       reflect.TypeOf(&TransferInput{}),
			Output:      reflect.TypeOf(&TransferOutput{}),
		},
		{
			Name:        "move",
			Description: "Moves a file or directory; an existing destination directory receives it.",
			Input:       reflect.TypeOf(&TransferInput{}),
			Output:      reflect.TypeOf(&TransferOutput{}),
		},
		{
			Name:        "rename",
			Description: "Renames a file or directory to exactly the destination path.",
			Input:       reflect.TypeOf(&TransferInput{}),
			Output:      reflect.TypeOf(&TransferOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "list":
		return s.list, nil
	case "createdir":
		return s.createDir, nil
	case "deletedir":
		return s.deleteDir, nil
	case "touch":
		return s.touch, nil
	case "write":
		return s.write, nil
	case "deletefile":
		return s.deleteFile, nil
	case "copy":
		return s.copy, nil
	case "move":
		return s.move, nil
	case "rename":
		return s.rename, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) list(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*ListInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*ListOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.List(ctx, input, output)
}

func (s *Service) createDir(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*CreateDirInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*CreateDirOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.CreateDir(ctx, input, output)
}

func (s *Service) deleteDir(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*DeleteDirInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*DeleteDirOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.DeleteDir(ctx, input, output)
}

func (s *Service) touch(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*TouchInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*TouchOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.Touch(ctx, input, output)
}

func (s *Service) write(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*WriteInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*WriteOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.Write(ctx, input, output)
}

func (s *Service) deleteFile(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*DeleteFileInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*DeleteFileOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.DeleteFile(ctx, input, output)
}

func (s *Service) copy(ctx context.Context, in, out interface{}) error {
	input, output, err := transferArgs(in, out)
	if err != nil {
		return err
	}
	return s.Copy(ctx, input, output)
}

func (s *Service) move(ctx context.Context, in, out interface{}) error {
	input, output, err := transferArgs(in, out)
	if err != nil {
		return err
	}
	return s.Move(ctx, input, output)
}

func (s *Service) rename(ctx context.Context, in, out interface{}) error {
	input, output, err := transferArgs(in, out)
	if err != nil {
		return err
	}
	return s.Rename(ctx, input, output)
}

func transferArgs(in, out interface{}) (*TransferInput, *TransferOutput, error) {
	input, ok := in.(*TransferInput)
	if !ok {
		return nil, nil, types.NewInvalidInputError(in)
	}
	output, ok := out.(*TransferOutput)
	if !ok {
		return nil, nil, types.NewInvalidOutputError(out)
	}
	return input, output, nil
}
