// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "errors"

// ErrInvalidTarget indicates a conversion target other than "md" or "js".
var ErrInvalidTarget = errors.New("invalid target format")

// ErrInvalidExtension indicates an input path without the .nnb extension.
var ErrInvalidExtension = errors.New("input file must be a node.js notebook file (.nnb)")
