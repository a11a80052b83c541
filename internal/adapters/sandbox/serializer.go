package sandbox

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/zerr"
)

// artifactMagic opens every cooked artifact.
const artifactMagic = "COOK1\n"

// footerSize is the length of the trailing checksum.
const footerSize = 8

var _ ports.PlatformSerializer = (*Serializer)(nil)

// Serializer writes loaded packages as checksummed text artifacts.
type Serializer struct{}

// NewSerializer creates a new Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Save writes pkg for platform to outputPath. An existing artifact with the
// same bytes is left untouched and reported as up to date.
func (s *Serializer) Save(
	ctx context.Context,
	pkg *domain.LoadedPackage,
	platform domain.PlatformID,
	outputPath string,
) (domain.SaveStatus, error) {
	if err := ctx.Err(); err != nil {
		return domain.SaveError, err
	}
	if pkg == nil || pkg.ID.IsZero() {
		return domain.SaveError, zerr.New("nothing to save")
	}

	data := Encode(pkg, platform)

	//nolint:gosec // Output path comes from the sandbox
	if existing, err := os.ReadFile(outputPath); err == nil && bytes.Equal(existing, data) {
		return domain.SaveUpToDate, nil
	}

	if err := writeAtomic(outputPath, data); err != nil {
		return domain.SaveError, err
	}
	return domain.SaveSuccess, nil
}

// Encode renders the artifact of pkg for platform.
func Encode(pkg *domain.LoadedPackage, platform domain.PlatformID) []byte {
	imports := make([]string, len(pkg.Imports))
	for i, imp := range pkg.Imports {
		imports[i] = imp.String()
	}

	var buf bytes.Buffer
	buf.WriteString(artifactMagic)
	fmt.Fprintf(&buf, "package: %s\n", pkg.ID)
	fmt.Fprintf(&buf, "platform: %s\n", platform)
	fmt.Fprintf(&buf, "class: %s\n", pkg.Class)
	fmt.Fprintf(&buf, "imports: %s\n", strings.Join(imports, ","))
	buf.WriteString("\n")
	buf.Write(pkg.Payload)

	_ = binary.Write(&buf, binary.LittleEndian, xxhash.Sum64(buf.Bytes()))
	return buf.Bytes()
}

// Verify checks the magic and the trailing checksum of an artifact.
func Verify(data []byte) error {
	if len(data) < len(artifactMagic)+footerSize || !bytes.HasPrefix(data, []byte(artifactMagic)) {
		return zerr.New("not a cooked artifact")
	}
	body := data[:len(data)-footerSize]
	want := binary.LittleEndian.Uint64(data[len(data)-footerSize:])
	if got := xxhash.Sum64(body); got != want {
		return zerr.With(zerr.New("artifact checksum mismatch"), "checksum", fmt.Sprintf("%016x", got))
	}
	return nil
}
