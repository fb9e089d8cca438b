package corpus

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- Training pages: append-only corpus of captured page snapshots.
-- Insertion order is the corpus order; duplicate URLs are allowed.
CREATE TABLE IF NOT EXISTS training_pages (
    page_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    lang TEXT,
    captured_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_training_pages_url ON training_pages(url);
CREATE INDEX IF NOT EXISTS idx_training_pages_captured ON training_pages(captured_at);
`
