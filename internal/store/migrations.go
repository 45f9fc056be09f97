package store

const createTableSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    hostname      TEXT NOT NULL,
    distro        TEXT NOT NULL DEFAULT '',
    kernel        TEXT NOT NULL DEFAULT '',
    collected_at  TEXT NOT NULL,
    stored_at     TEXT NOT NULL,
    report_json   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_hostname ON snapshots(hostname);
CREATE INDEX IF NOT EXISTS idx_snapshots_distro ON snapshots(distro);
CREATE INDEX IF NOT EXISTS idx_snapshots_collected_at ON snapshots(collected_at);
`
