package coordinator

import (
	"database/sql"

	"github.com/TEENet-io/atomicswap-core/database"
	"github.com/TEENet-io/atomicswap-core/escrow"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Store is the sqlite-backed persistence layer for the Coordinator,
// shaped after the teacher's state/eth2btcstate.StateDB: one *sql.DB,
// one prepared-statement cache, hex-string columns.
type Store struct {
	db        *sql.DB
	stmtCache *database.StmtCache
}

func NewStore(driverName, dataSourceName string) (*Store, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(secretsTable + mappingTable + ethEscrowTable + consumedPreimagesTable); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, stmtCache: database.NewStmtCache(db)}, nil
}

func (s *Store) Close() error {
	s.stmtCache.Clear()
	return s.db.Close()
}

func hashHex(h ethcommon.Hash) string { return ethcommon.Bytes2Hex(h[:]) }

func addrHex(a escrow.Address) string { return ethcommon.Bytes2Hex(a) }

// upsertSecret writes or overwrites the coordination row for a foreign
// escrow id.
func (s *Store) upsertSecret(foreignEscrowId ethcommon.Hash, entry CoordinatorEntry) error {
	stmt, err := s.stmtCache.Prepare(`INSERT OR REPLACE INTO secrets (
		foreignEscrowId, secret, coordinatedAt, coordinatorAddr, status, consumed
	) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(
		hashHex(foreignEscrowId),
		hashHex(entry.Secret),
		entry.CoordinatedAt,
		addrHex(entry.CoordinatorAddr),
		string(entry.Status),
		entry.Consumed,
	)
	return err
}

// getSecretByForeignId looks up the coordination row by foreign escrow
// id.
func (s *Store) getSecretByForeignId(foreignEscrowId ethcommon.Hash) (CoordinatorEntry, bool, error) {
	stmt, err := s.stmtCache.Prepare(`SELECT secret, coordinatedAt, coordinatorAddr, status, consumed
		FROM secrets WHERE foreignEscrowId = ?`)
	if err != nil {
		return CoordinatorEntry{}, false, err
	}

	row := stmt.QueryRow(hashHex(foreignEscrowId))
	var secretHex, coordinatorHex, status string
	var coordinatedAt uint64
	var consumed bool
	if err := row.Scan(&secretHex, &coordinatedAt, &coordinatorHex, &status, &consumed); err != nil {
		if err == sql.ErrNoRows {
			return CoordinatorEntry{}, false, nil
		}
		return CoordinatorEntry{}, false, err
	}

	return CoordinatorEntry{
		Secret:          ethcommon.HexToHash(secretHex),
		CoordinatedAt:   coordinatedAt,
		CoordinatorAddr: escrow.Address(ethcommon.FromHex(coordinatorHex)),
		Status:          StatusTag(status),
		Consumed:        consumed,
	}, true, nil
}

// secretIsCoordinated reports whether the given secret already appears
// in the secrets table, regardless of which foreign escrow id it was
// filed under.
func (s *Store) secretIsCoordinated(secret ethcommon.Hash) (bool, error) {
	stmt, err := s.stmtCache.Prepare(`SELECT EXISTS(SELECT 1 FROM secrets WHERE secret = ?)`)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := stmt.QueryRow(hashHex(secret)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Store) markConsumedByForeignId(foreignEscrowId ethcommon.Hash) error {
	stmt, err := s.stmtCache.Prepare(`UPDATE secrets SET consumed = 1, status = ? WHERE foreignEscrowId = ?`)
	if err != nil {
		return err
	}
	_, err = stmt.Exec(string(StatusLocalWithdrawalComplete), hashHex(foreignEscrowId))
	return err
}

// countPendingSecrets returns the number of coordinated-but-unconsumed
// rows in the secrets table, for the coordinator backlog gauge.
func (s *Store) countPendingSecrets() (int, error) {
	stmt, err := s.stmtCache.Prepare(`SELECT COUNT(*) FROM secrets WHERE consumed = 0`)
	if err != nil {
		return 0, err
	}
	var n int
	if err := stmt.QueryRow().Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) deleteSecret(foreignEscrowId ethcommon.Hash) error {
	stmt, err := s.stmtCache.Prepare(`DELETE FROM secrets WHERE foreignEscrowId = ?`)
	if err != nil {
		return err
	}
	_, err = stmt.Exec(hashHex(foreignEscrowId))
	return err
}

// --- bijection ---

func (s *Store) getMappingByForeign(foreignEscrowId ethcommon.Hash) (ethcommon.Hash, bool, error) {
	stmt, err := s.stmtCache.Prepare(`SELECT localOrderHash FROM order_escrow_map WHERE foreignEscrowId = ?`)
	if err != nil {
		return ethcommon.Hash{}, false, err
	}
	var localHex string
	if err := stmt.QueryRow(hashHex(foreignEscrowId)).Scan(&localHex); err != nil {
		if err == sql.ErrNoRows {
			return ethcommon.Hash{}, false, nil
		}
		return ethcommon.Hash{}, false, err
	}
	return ethcommon.HexToHash(localHex), true, nil
}

func (s *Store) getMappingByLocal(localOrderHash ethcommon.Hash) (ethcommon.Hash, bool, error) {
	stmt, err := s.stmtCache.Prepare(`SELECT foreignEscrowId FROM order_escrow_map WHERE localOrderHash = ?`)
	if err != nil {
		return ethcommon.Hash{}, false, err
	}
	var foreignHex string
	if err := stmt.QueryRow(hashHex(localOrderHash)).Scan(&foreignHex); err != nil {
		if err == sql.ErrNoRows {
			return ethcommon.Hash{}, false, nil
		}
		return ethcommon.Hash{}, false, err
	}
	return ethcommon.HexToHash(foreignHex), true, nil
}

func (s *Store) insertMapping(foreignEscrowId, localOrderHash ethcommon.Hash) error {
	stmt, err := s.stmtCache.Prepare(`INSERT INTO order_escrow_map (foreignEscrowId, localOrderHash) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	_, err = stmt.Exec(hashHex(foreignEscrowId), hashHex(localOrderHash))
	return err
}

// --- reverse direction (E->S) ---

func (s *Store) insertEthereumEscrowData(row EthereumEscrowData) error {
	stmt, err := s.stmtCache.Prepare(`INSERT INTO ethereum_escrow_data (
		orderHash, secretHash, maker, taker, token, amount, safetyDeposit, foreignEscrowId, secretPreimage, active
	) VALUES (?, ?, ?, ?, ?, ?, ?, NULL, NULL, 1)`)
	if err != nil {
		return err
	}
	_, err = stmt.Exec(
		hashHex(row.OrderHash), hashHex(row.SecretHash),
		addrHex(row.Maker), addrHex(row.Taker), addrHex(row.Token),
		row.Amount, row.SafetyDeposit,
	)
	return err
}

func (s *Store) getEthereumEscrowData(orderHash ethcommon.Hash) (EthereumEscrowData, bool, error) {
	stmt, err := s.stmtCache.Prepare(`SELECT secretHash, maker, taker, token, amount, safetyDeposit,
		foreignEscrowId, secretPreimage, active FROM ethereum_escrow_data WHERE orderHash = ?`)
	if err != nil {
		return EthereumEscrowData{}, false, err
	}

	var secretHashHex, makerHex, takerHex, tokenHex string
	var amount, safetyDeposit uint64
	var foreignIdHex, preimageHex sql.NullString
	var active bool

	row := stmt.QueryRow(hashHex(orderHash))
	if err := row.Scan(&secretHashHex, &makerHex, &takerHex, &tokenHex, &amount, &safetyDeposit,
		&foreignIdHex, &preimageHex, &active); err != nil {
		if err == sql.ErrNoRows {
			return EthereumEscrowData{}, false, nil
		}
		return EthereumEscrowData{}, false, err
	}

	out := EthereumEscrowData{
		OrderHash:     orderHash,
		SecretHash:    ethcommon.HexToHash(secretHashHex),
		Maker:         escrow.Address(ethcommon.FromHex(makerHex)),
		Taker:         escrow.Address(ethcommon.FromHex(takerHex)),
		Token:         escrow.Address(ethcommon.FromHex(tokenHex)),
		Amount:        amount,
		SafetyDeposit: safetyDeposit,
		Active:        active,
	}
	if foreignIdHex.Valid {
		out.ForeignEscrowId = ethcommon.HexToHash(foreignIdHex.String)
	}
	if preimageHex.Valid {
		out.SecretPreimage = ethcommon.FromHex(preimageHex.String)
	}
	return out, true, nil
}

func (s *Store) linkForeignEscrow(orderHash, foreignEscrowId ethcommon.Hash) error {
	stmt, err := s.stmtCache.Prepare(`UPDATE ethereum_escrow_data SET foreignEscrowId = ? WHERE orderHash = ?`)
	if err != nil {
		return err
	}
	_, err = stmt.Exec(hashHex(foreignEscrowId), hashHex(orderHash))
	return err
}

func (s *Store) storePreimage(orderHash ethcommon.Hash, preimage []byte) error {
	stmt, err := s.stmtCache.Prepare(`UPDATE ethereum_escrow_data SET secretPreimage = ? WHERE orderHash = ?`)
	if err != nil {
		return err
	}
	_, err = stmt.Exec(ethcommon.Bytes2Hex(preimage), hashHex(orderHash))
	return err
}

func (s *Store) deactivate(orderHash ethcommon.Hash) error {
	stmt, err := s.stmtCache.Prepare(`UPDATE ethereum_escrow_data SET active = 0 WHERE orderHash = ?`)
	if err != nil {
		return err
	}
	_, err = stmt.Exec(hashHex(orderHash))
	return err
}

// --- cross-direction one-shot ledger ---

func (s *Store) preimageDirection(secret ethcommon.Hash) (string, bool, error) {
	stmt, err := s.stmtCache.Prepare(`SELECT direction FROM consumed_preimages WHERE secret = ?`)
	if err != nil {
		return "", false, err
	}
	var direction string
	if err := stmt.QueryRow(hashHex(secret)).Scan(&direction); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return direction, true, nil
}

func (s *Store) recordPreimageConsumption(secret ethcommon.Hash, direction string) error {
	stmt, err := s.stmtCache.Prepare(`INSERT INTO consumed_preimages (secret, direction) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	_, err = stmt.Exec(hashHex(secret), direction)
	return err
}
