package prompt

const (
	Greeting    = "greeting"
	Question    = "question"
	Summary     = "summary"
	RAGAnswer   = "rag_answer"
	Relevancy   = "relevancy"
	FactCheck   = "fact_check"
	Translation = "translation"
)

var builtins = []Template{
	{
		Name:        Greeting,
		Description: "Friendly greeting for a named user",
		Text:        "Hello {name}! Have a great day.",
	},
	{
		Name:        Question,
		Description: "Question from a named user with optional extra context",
		Text: `{userName} asked a question:

Question: {question}

{additionalContext}

Please answer kindly and accurately.`,
	},
	{
		Name:        Summary,
		Description: "Summarise content in 3-5 sentences",
		Text: `Summarize the following content:

{content}

Keep it to the key points in 3-5 concise sentences.`,
	},
	{
		Name:        RAGAnswer,
		Description: "Answer a question using only the retrieved context",
		Text: `Context information is below.
---------------------
{context}
---------------------
Given the context information and no prior knowledge, answer the question.
If the answer is not in the context, say that you don't know.

Question: {question}`,
	},
	{
		Name:        Relevancy,
		Description: "Judge whether an answer is relevant to a question and its context",
		Text: `Your task is to evaluate if the response for the query is in line with the context information provided.
You have two options to answer. Either YES or NO.
Answer YES if the response for the query is in line with context information, otherwise NO.

Query:
{question}

Response:
{answer}

Context:
{context}

Answer:`,
	},
	{
		Name:        FactCheck,
		Description: "Judge whether a claim is supported by a document",
		Text: `Evaluate whether the following claim is supported by the provided document.
Respond with YES if the claim is supported, NO otherwise.

Document:
{document}

Claim:
{claim}`,
	},
	{
		Name:        Translation,
		Description: "Translate text into a target language",
		Text: `Translate the following text into {language}. Return only the translation.

{text}`,
	},
}

// QuestionParams fills the question template. An empty context drops the context line.
func QuestionParams(userName, question, context string) Params {
	additional := ""
	if context != "" {
		additional = "Additional context: " + context
	}
	return Params{
		"userName":          userName,
		"question":          question,
		"additionalContext": additional,
	}
}
