package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Articles table: the indexed copy of the dataset for metadata queries
CREATE TABLE IF NOT EXISTS articles (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    snippet TEXT,
    body TEXT,
    date TEXT,                    -- YYYY-MM-DD, empty when unknown
    source TEXT,
    publisher TEXT,
    category TEXT,
    vertrouwensscore INTEGER NOT NULL DEFAULT 0,
    content_type TEXT,            -- all, cbs-data, cbs-only, nieuwsvergadering
    media_quality INTEGER NOT NULL DEFAULT 0,
    citations INTEGER NOT NULL DEFAULT 0,
    word_count INTEGER NOT NULL DEFAULT 0,
    language TEXT,
    tags TEXT,                    -- comma-joined
    key_themes TEXT,              -- comma-joined, display order preserved
    cbs_numbers TEXT,             -- comma-joined parent release ids
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category);
CREATE INDEX IF NOT EXISTS idx_articles_source ON articles(source);
CREATE INDEX IF NOT EXISTS idx_articles_publisher ON articles(publisher);
CREATE INDEX IF NOT EXISTS idx_articles_score ON articles(vertrouwensscore);
CREATE INDEX IF NOT EXISTS idx_articles_content_type ON articles(content_type);
CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date);

-- App state: namespaced key-value storage for durable local state
CREATE TABLE IF NOT EXISTS app_state (
    state_id INTEGER PRIMARY KEY AUTOINCREMENT,
    namespace TEXT NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(namespace, key)
);

CREATE INDEX IF NOT EXISTS idx_app_state_namespace ON app_state(namespace);
`
