package escrow

import (
	"github.com/gagliardetto/solana-go"
	tokenswap "github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

const (
	// AuthoritySeed derives the authority shared by all vaults.
	AuthoritySeed = "authority-seed"
	// VaultSeed prefixes the escrow id when deriving a vault address.
	VaultSeed = "token-seed"

	conditionExt = "escrow"
)

// DefaultProgramID identifies the escrow program when none is configured.
var DefaultProgramID = solana.MustPublicKeyFromBase58("AATdQpopjKABYHXMthLY7HCjpFHeDLUw6cgAK2rwD7vY")

// Authority is the key-less owner of every vault. It is derived once from
// the program identity and never changes.
type Authority struct {
	programID solana.PublicKey
	pda       solana.PublicKey
	bump      uint8
}

// NewAuthority derives the authority of given program.
func NewAuthority(programID solana.PublicKey) (*Authority, error) {
	pda, bump, err := solana.FindProgramAddress([][]byte{[]byte(AuthoritySeed)}, programID)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "derive authority: %s", err)
	}
	return &Authority{programID: programID, pda: pda, bump: bump}, nil
}

// ProgramID returns the program identity the authority was derived from.
func (a *Authority) ProgramID() solana.PublicKey {
	return a.programID
}

// PublicKey returns the derived program address.
func (a *Authority) PublicKey() solana.PublicKey {
	return a.pda
}

// Bump returns the bump seed that puts the derived address off the curve.
func (a *Authority) Bump() uint8 {
	return a.bump
}

// Address is the ledger address vaults are handed over to.
func (a *Authority) Address() tokenswap.Address {
	return a.condition().Address()
}

func (a *Authority) condition() tokenswap.Condition {
	return tokenswap.NewCondition(conditionExt, "authority", a.pda[:])
}

// FindVault returns the vault address of given escrow together with the
// bump that must be sent with the initialize message.
func (a *Authority) FindVault(escrowID []byte) (tokenswap.Address, uint8, error) {
	return FindVault(a.programID, escrowID)
}

// DeriveVault recomputes the vault address from the escrow id and bump.
func (a *Authority) DeriveVault(escrowID []byte, bump uint8) (tokenswap.Address, error) {
	return DeriveVault(a.programID, escrowID, bump)
}

// FindVault searches for the vault address of given escrow.
func FindVault(programID solana.PublicKey, escrowID []byte) (tokenswap.Address, uint8, error) {
	pda, bump, err := solana.FindProgramAddress(vaultSeeds(escrowID), programID)
	if err != nil {
		return nil, 0, errors.Wrapf(errors.ErrInput, "derive vault: %s", err)
	}
	return vaultCondition(pda).Address(), bump, nil
}

// DeriveVault recomputes the vault address of given escrow using the bump
// returned by FindVault. A bump that does not produce a valid program
// address fails with ErrInput.
func DeriveVault(programID solana.PublicKey, escrowID []byte, bump uint8) (tokenswap.Address, error) {
	cond, err := deriveVault(programID, escrowID, bump)
	if err != nil {
		return nil, err
	}
	return cond.Address(), nil
}

func deriveVault(programID solana.PublicKey, escrowID []byte, bump uint8) (tokenswap.Condition, error) {
	seeds := append(vaultSeeds(escrowID), []byte{bump})
	pda, err := solana.CreateProgramAddress(seeds, programID)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "derive vault: %s", err)
	}
	return vaultCondition(pda), nil
}

func vaultSeeds(escrowID []byte) [][]byte {
	return [][]byte{[]byte(VaultSeed), escrowID}
}

func vaultCondition(pda solana.PublicKey) tokenswap.Condition {
	return tokenswap.NewCondition(conditionExt, "vault", pda[:])
}

// recordAddress holds the storage rent paid for an escrow record.
func recordAddress(escrowID []byte) tokenswap.Address {
	return tokenswap.NewCondition(conditionExt, "record", escrowID).Address()
}
