package keystore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kerrors "github.com/purrcrypt/purr/internal/errors"
	"github.com/purrcrypt/purr/internal/keys"
)

const (
	// PublicKeyExt and PrivateKeyExt are the conventional filename
	// extensions for the two key halves. The halves of a pair share a
	// filename stem and nothing else; the pairing is a naming convention,
	// not a stored relationship.
	PublicKeyExt  = ".pub"
	PrivateKeyExt = ".key"

	homeEnv = "PURR_HOME"
)

// Keystore owns the on-disk key directory tree:
//
//	~/.purr/
//	  keys/
//	    public/   <name>.pub, world-readable
//	    private/  <name>.key, owner-only
type Keystore struct {
	HomeDir string
	KeysDir string
}

// New resolves the purr home directory ($PURR_HOME, else ~/.purr) and
// creates the key tree if it is absent. Calling it repeatedly is safe.
func New() (*Keystore, error) {
	home := os.Getenv(homeEnv)
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to resolve home directory: %v", kerrors.ErrStorage, err)
		}
		home = filepath.Join(userHome, ".purr")
	}

	ks := &Keystore{
		HomeDir: home,
		KeysDir: filepath.Join(home, "keys"),
	}

	if info, err := os.Stat(ks.KeysDir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s exists but is not a directory", kerrors.ErrStorage, ks.KeysDir)
	}
	// #nosec G301 -- Public keys are meant to be shared.
	if err := os.MkdirAll(ks.PublicDir(), 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create %s: %v", kerrors.ErrStorage, ks.PublicDir(), err)
	}
	if err := os.MkdirAll(ks.PrivateDir(), 0700); err != nil {
		return nil, fmt.Errorf("%w: failed to create %s: %v", kerrors.ErrStorage, ks.PrivateDir(), err)
	}
	return ks, nil
}

func (ks *Keystore) PublicDir() string {
	return filepath.Join(ks.KeysDir, "public")
}

func (ks *Keystore) PrivateDir() string {
	return filepath.Join(ks.KeysDir, "private")
}

// KeyPaths constructs both key paths for a name. It performs no I/O and no
// existence checks; callers decide which halves they need and stat them
// themselves.
func (ks *Keystore) KeyPaths(name string) (publicPath, privatePath string) {
	publicPath = filepath.Join(ks.PublicDir(), name+PublicKeyExt)
	privatePath = filepath.Join(ks.PrivateDir(), name+PrivateKeyExt)
	return publicPath, privatePath
}

// FindKey resolves a key reference to a file path. A reference that is an
// existing filesystem path is returned verbatim; otherwise it is treated
// as a bare name and looked up in the public or private subdirectory with
// the conventional extension.
func (ks *Keystore) FindKey(reference string, wantPublic bool) (string, error) {
	if _, err := os.Stat(reference); err == nil {
		return reference, nil
	}

	publicPath, privatePath := ks.KeyPaths(reference)
	candidate := privatePath
	if wantPublic {
		candidate = publicPath
	}
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}

	return "", fmt.Errorf("%w: %q is neither a file nor a known key name (tried %s)",
		kerrors.ErrKeyNotFound, reference, candidate)
}

// Generate creates a fresh keypair and persists both halves under name.
func (ks *Keystore) Generate(name string, random io.Reader) (publicPath, privatePath string, err error) {
	kp, err := keys.Generate(random)
	if err != nil {
		return "", "", err
	}

	publicPath, privatePath = ks.KeyPaths(name)
	if err := keys.SavePublicKey(publicPath, kp.Public); err != nil {
		return "", "", fmt.Errorf("%w: %v", kerrors.ErrKeyGeneration, err)
	}
	if err := keys.SavePrivateKey(privatePath, kp.Private); err != nil {
		return "", "", fmt.Errorf("%w: %v", kerrors.ErrKeyGeneration, err)
	}
	return publicPath, privatePath, nil
}

// ImportKey copies an external key file into the keystore, validating the
// key material and applying the permission policy for private keys. The
// destination name is the source filename stem plus the conventional
// extension.
func (ks *Keystore) ImportKey(sourcePath string, isPublic bool) (string, error) {
	name := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	publicPath, privatePath := ks.KeyPaths(name)

	if isPublic {
		pub, err := keys.LoadPublicKey(sourcePath)
		if err != nil {
			return "", err
		}
		if err := keys.SavePublicKey(publicPath, pub); err != nil {
			return "", fmt.Errorf("%w: %v", kerrors.ErrStorage, err)
		}
		return publicPath, nil
	}

	priv, err := keys.LoadPrivateKey(sourcePath)
	if err != nil {
		return "", err
	}
	if err := keys.SavePrivateKey(privatePath, priv); err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrStorage, err)
	}
	return privatePath, nil
}

// ListKeys enumerates both subdirectories, sorted by name so output is
// deterministic.
func (ks *Keystore) ListKeys() (publicKeys, privateKeys []string, err error) {
	publicKeys, err = listDir(ks.PublicDir())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to list public keys: %v", kerrors.ErrStorage, err)
	}
	privateKeys, err = listDir(ks.PrivateDir())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to list private keys: %v", kerrors.ErrStorage, err)
	}
	return publicKeys, privateKeys, nil
}

func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// VerifyPermissions checks that the private key directory and every file
// in it deny group and world access. Loose permissions are reported as
// warnings, never as a fatal error: confidentiality on a shared filesystem
// is at risk, but correctness is not.
func (ks *Keystore) VerifyPermissions() ([]string, error) {
	var warnings []string

	info, err := os.Stat(ks.PrivateDir())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat %s: %v", kerrors.ErrStorage, ks.PrivateDir(), err)
	}
	if mode := info.Mode().Perm(); mode&0077 != 0 {
		warnings = append(warnings, fmt.Sprintf(
			"private key directory %s has permissions %o, consider running 'chmod 700 %s'",
			ks.PrivateDir(), mode, ks.PrivateDir()))
	}

	entries, err := os.ReadDir(ks.PrivateDir())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list %s: %v", kerrors.ErrStorage, ks.PrivateDir(), err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileInfo, err := entry.Info()
		if err != nil {
			continue
		}
		if mode := fileInfo.Mode().Perm(); mode&0077 != 0 {
			path := filepath.Join(ks.PrivateDir(), entry.Name())
			warnings = append(warnings, fmt.Sprintf(
				"private key file %s has overly permissive permissions (%o), consider running 'chmod 600 %s'",
				path, mode, path))
		}
	}
	return warnings, nil
}
