package coordinator

// Schema mirrors the teacher's state/eth2btcstate table style: a single
// CREATE TABLE IF NOT EXISTS per concern, hex-string columns for 32-byte
// digests and addresses, boolean flags stored as SQLite integers.
var (
	secretsTable = `CREATE TABLE IF NOT EXISTS secrets (
		foreignEscrowId CHAR(64) PRIMARY KEY NOT NULL,
		secret CHAR(64) UNIQUE NOT NULL,
		coordinatedAt BIGINT UNSIGNED NOT NULL,
		coordinatorAddr VARCHAR(64) NOT NULL,
		status VARCHAR(32) NOT NULL,
		consumed BOOLEAN NOT NULL DEFAULT 0
	);`

	mappingTable = `CREATE TABLE IF NOT EXISTS order_escrow_map (
		foreignEscrowId CHAR(64) PRIMARY KEY NOT NULL,
		localOrderHash CHAR(64) UNIQUE NOT NULL
	);`

	ethEscrowTable = `CREATE TABLE IF NOT EXISTS ethereum_escrow_data (
		orderHash CHAR(64) PRIMARY KEY NOT NULL,
		secretHash CHAR(64) NOT NULL,
		maker VARCHAR(64) NOT NULL,
		taker VARCHAR(64) NOT NULL,
		token VARCHAR(64) NOT NULL,
		amount BIGINT UNSIGNED NOT NULL,
		safetyDeposit BIGINT UNSIGNED NOT NULL,
		foreignEscrowId CHAR(64),
		secretPreimage CHAR(64),
		active BOOLEAN NOT NULL DEFAULT 1
	);`

	// consumedPreimages is the cross-direction one-shot ledger: a given
	// preimage may be spent by withdraw_with_coordinated_secret (direction
	// "foreign_to_local") XOR complete_foreign_withdrawal_from_local_secret
	// (direction "local_to_foreign"), never both.
	consumedPreimagesTable = `CREATE TABLE IF NOT EXISTS consumed_preimages (
		secret CHAR(64) PRIMARY KEY NOT NULL,
		direction VARCHAR(32) NOT NULL
	);`
)

const (
	directionForeignToLocal = "foreign_to_local"
	directionLocalToForeign = "local_to_foreign"
)
