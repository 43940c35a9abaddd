// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - DocumentLoader: Discovers PDF files and extracts per-page text
//   - EmbeddingService: Generates vector embeddings (Ollama)
//   - LLMService: Language model generation (Ollama)
//   - VectorStore: Vector record persistence and similarity search (SQLite)
//   - PromptStore: User-editable prompt templates
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or loader package
package driven
