package page

// The generated page is self-contained: inline styles, inline behavior
// script, no external runtime dependencies besides the analytics snippet.
// The document is split into named sub-templates so the script block never
// has to live inside a formatted string.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">

    <!-- Primary Meta Tags -->
    <title>🧘 Guided Meditations - Curated Collection from Dharma Podcasts</title>
    <meta name="title" content="🧘 Guided Meditations - Curated Collection from Dharma Podcasts">
    <meta name="description" content="Discover {{.CountText}} guided meditations from renowned teachers including Tara Brach, Jack Kornfield, Sharon Salzberg, Joseph Goldstein, and Ajahn Brahm. Free mindfulness and dharma practices.">
    <meta name="keywords" content="guided meditation, mindfulness, dharma, buddhist meditation, Tara Brach, Jack Kornfield, Sharon Salzberg, Joseph Goldstein, Ajahn Brahm, meditation practice, body scan, breath meditation, compassion meditation, insight meditation">
    <meta name="author" content="Alastair Rushworth">
    <meta name="robots" content="index, follow">
    <link rel="canonical" href="https://alastairrushworth.github.io/meditation/">

    <!-- Open Graph / Facebook -->
    <meta property="og:type" content="website">
    <meta property="og:url" content="https://alastairrushworth.github.io/meditation/">
    <meta property="og:title" content="🧘 Guided Meditations - Curated Collection from Dharma Podcasts">
    <meta property="og:description" content="Discover {{.CountText}} guided meditations from renowned teachers including Tara Brach, Jack Kornfield, Sharon Salzberg, Joseph Goldstein, and Ajahn Brahm. Free mindfulness and dharma practices.">
    <meta property="og:site_name" content="🧘 Guided Meditations">

    <!-- Twitter -->
    <meta property="twitter:card" content="summary_large_card">
    <meta property="twitter:url" content="https://alastairrushworth.github.io/meditation/">
    <meta property="twitter:title" content="🧘 Guided Meditations - Curated Collection from Dharma Podcasts">
    <meta property="twitter:description" content="Discover {{.CountText}} guided meditations from renowned teachers including Tara Brach, Jack Kornfield, Sharon Salzberg, Joseph Goldstein, and Ajahn Brahm. Free mindfulness and dharma practices.">

    <!-- Structured Data / JSON-LD -->
    <script type="application/ld+json">
    {{.StructuredData}}
    </script>

    <style>
{{template "styles"}}
    </style>
    <!-- Google tag (gtag.js) -->
    <script async src="https://www.googletagmanager.com/gtag/js?id=G-Y8XLWX2T51"></script>
    <script>
      window.dataLayer = window.dataLayer || [];
      function gtag(){dataLayer.push(arguments);}
      gtag('js', new Date());

      gtag('config', 'G-Y8XLWX2T51');
    </script>
</head>
<body>
    <div class="container">
        <header>
            <h1>🧘 Guided Meditations</h1>
            <p class="subtitle">A curated collection from dharma podcasts</p>
            <div class="search-box">
                <input type="text" id="search-input" class="search-input" placeholder="Search meditations...">
            </div>
        </header>

        <div class="filters">
            <div class="filter-pills" id="filter-pills">
                <div class="filter-pill active" data-podcast="all">All</div>
                {{range .Pills}}<div class="filter-pill" data-podcast="{{.}}">{{.}}</div>
                {{end}}
            </div>
            <div class="result-count" id="result-count">Showing {{.TotalCount}} meditations</div>
        </div>

        <main>
{{range .Cards}}{{template "card" .}}{{end}}
        </main>

        <div class="pagination" id="pagination">
            <button class="pagination-btn" id="prev-btn" disabled>&laquo; Previous</button>
            <div class="pagination-numbers" id="pagination-numbers"></div>
            <button class="pagination-btn" id="next-btn">Next &raquo;</button>
        </div>

        <footer>
            <p>Last updated: {{.UpdatedAt}}</p>
            <p>Generated from podcast RSS feeds</p>
            <p>
                <a href="https://github.com/alastairrushworth/meditation" target="_blank">View on GitHub</a> |
                Made by <a href="https://alastairrushworth.com" target="_blank">alastairrushworth.com</a>
            </p>
        </footer>
    </div>

    <script>
{{template "script"}}
    </script>
</body>
</html>
`

const cardTemplate = `{{define "card"}}
            <div class="meditation" data-podcast="{{.FeedName}}" data-title="{{.TitleLower}}" data-description="{{.SearchText}}" data-original-title="{{.Title}}" data-url="{{.EpisodeURL}}">
                <div class="meditation-content">
                    <div class="meditation-meta">
                        <a href="{{.FeedWebsite}}" class="meditation-source" target="_blank" onclick="event.stopPropagation();">{{.FeedName}}</a>
                        <div class="meta-dot"></div>
                        <div class="meditation-date">{{.Date}}</div>{{if .Duration}}
                        <div class="meta-dot"></div>
                        <div class="meditation-date">{{.Duration}}</div>{{end}}
                    </div>
                    <div class="meditation-title">{{.Title}}</div>
                    <div class="meditation-description">{{.Description}}</div>
                </div>
            </div>
{{end}}`

const stylesTemplate = `{{define "styles"}}
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Inter', 'Helvetica Neue', sans-serif;
            line-height: 1.6;
            color: #2c3e50;
            background: linear-gradient(135deg, #f5f7fa 0%, #e8ecf1 100%);
            min-height: 100vh;
            -webkit-font-smoothing: antialiased;
        }

        .container {
            max-width: 900px;
            margin: 0 auto;
            padding-bottom: 60px;
        }

        header {
            padding: 48px 24px 32px;
            text-align: center;
            background: rgba(255, 255, 255, 0.7);
            backdrop-filter: blur(10px);
            position: sticky;
            top: 0;
            z-index: 100;
            border-bottom: 1px solid rgba(0, 0, 0, 0.05);
        }

        h1 {
            font-size: 2.5em;
            margin-bottom: 6px;
            font-weight: 700;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
            letter-spacing: -0.02em;
        }

        .subtitle {
            font-size: 1em;
            color: #64748b;
            font-weight: 400;
            margin-bottom: 24px;
        }

        .search-box {
            max-width: 500px;
            margin: 0 auto;
            position: relative;
        }

        .search-input {
            width: 100%;
            padding: 14px 20px;
            border: 2px solid transparent;
            border-radius: 12px;
            font-size: 1em;
            background: white;
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.06);
            transition: all 0.3s ease;
        }

        .search-input:focus {
            outline: none;
            border-color: #667eea;
            box-shadow: 0 4px 12px rgba(102, 126, 234, 0.15);
        }

        .search-input::placeholder {
            color: #94a3b8;
        }

        .filters {
            padding: 16px 24px;
            overflow-x: auto;
            -webkit-overflow-scrolling: touch;
        }

        .filter-pills {
            display: flex;
            gap: 8px;
            flex-wrap: wrap;
            justify-content: center;
            min-height: 32px;
        }

        .filter-pill {
            padding: 6px 14px;
            border-radius: 16px;
            border: 1.5px solid #e2e8f0;
            background: white;
            color: #64748b;
            font-size: 0.8em;
            font-weight: 500;
            cursor: pointer;
            transition: all 0.2s ease;
            white-space: nowrap;
            user-select: none;
        }

        .filter-pill:hover {
            border-color: #cbd5e1;
            background: #f8fafc;
        }

        .filter-pill.active {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border-color: transparent;
        }

        .result-count {
            text-align: center;
            margin: 16px 0 8px;
            color: #94a3b8;
            font-size: 0.9em;
        }

        main {
            padding: 0 24px;
        }

        .meditation {
            background: white;
            margin-bottom: 16px;
            border-radius: 12px;
            overflow: hidden;
            box-shadow: 0 1px 3px rgba(0, 0, 0, 0.05);
            transition: all 0.3s ease;
            cursor: pointer;
        }

        .meditation:hover {
            box-shadow: 0 8px 16px rgba(0, 0, 0, 0.1);
            transform: translateY(-2px);
        }

        .meditation-content {
            padding: 24px;
            overflow: hidden;
        }

        .meditation-meta {
            display: flex;
            align-items: center;
            gap: 12px;
            margin-bottom: 12px;
            flex-wrap: wrap;
        }

        .meditation-source {
            font-size: 0.8em;
            font-weight: 600;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            color: #667eea;
            text-decoration: none;
        }

        .meditation-date {
            font-size: 0.85em;
            color: #94a3b8;
        }

        .meta-dot {
            width: 3px;
            height: 3px;
            background: #cbd5e1;
            border-radius: 50%;
        }

        .meditation-title {
            font-size: 1.25em;
            font-weight: 600;
            color: #1e293b;
            line-height: 1.4;
            margin-bottom: 10px;
        }

        .meditation-description {
            color: #64748b;
            line-height: 1.6;
            font-size: 0.95em;
            overflow-wrap: break-word;
            word-wrap: break-word;
            word-break: break-word;
        }

        .meditation-description a {
            color: #667eea;
            text-decoration: underline;
            word-break: break-all;
            overflow-wrap: anywhere;
        }

        .meditation-description a:hover {
            color: #764ba2;
        }

        footer {
            text-align: center;
            padding: 40px 24px;
            color: #94a3b8;
            font-size: 0.85em;
        }

        footer p {
            margin: 6px 0;
        }

        footer a {
            color: #667eea;
            text-decoration: none;
            transition: color 0.2s ease;
        }

        footer a:hover {
            color: #764ba2;
            text-decoration: underline;
        }

        .pagination {
            display: flex;
            justify-content: center;
            align-items: center;
            gap: 12px;
            padding: 32px 24px;
            flex-wrap: wrap;
        }

        .pagination-btn {
            padding: 10px 18px;
            border: 2px solid #e2e8f0;
            background: white;
            color: #64748b;
            font-size: 0.9em;
            font-weight: 500;
            cursor: pointer;
            border-radius: 8px;
            transition: all 0.2s ease;
            user-select: none;
        }

        .pagination-btn:hover:not(:disabled) {
            border-color: #667eea;
            color: #667eea;
            background: #f8fafc;
        }

        .pagination-btn:disabled {
            opacity: 0.4;
            cursor: not-allowed;
        }

        .pagination-numbers {
            display: flex;
            gap: 6px;
            flex-wrap: wrap;
            justify-content: center;
        }

        .page-number {
            padding: 8px 12px;
            border: 2px solid #e2e8f0;
            background: white;
            color: #64748b;
            font-size: 0.9em;
            font-weight: 500;
            cursor: pointer;
            border-radius: 8px;
            transition: all 0.2s ease;
            user-select: none;
            min-width: 40px;
            text-align: center;
        }

        .page-number:hover {
            border-color: #cbd5e1;
            background: #f8fafc;
        }

        .page-number.active {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border-color: transparent;
        }

        .page-ellipsis {
            padding: 8px 4px;
            color: #94a3b8;
            user-select: none;
        }

        .hidden {
            display: none !important;
        }

        .highlight {
            background: linear-gradient(135deg, #fef08a 0%, #fde047 100%);
            padding: 2px 4px;
            border-radius: 3px;
        }

        /* Scrollbar styling */
        ::-webkit-scrollbar {
            width: 8px;
            height: 8px;
        }

        ::-webkit-scrollbar-track {
            background: transparent;
        }

        ::-webkit-scrollbar-thumb {
            background: #cbd5e1;
            border-radius: 4px;
        }

        ::-webkit-scrollbar-thumb:hover {
            background: #94a3b8;
        }

        @media (max-width: 768px) {
            h1 {
                font-size: 2em;
            }

            header {
                padding: 32px 20px 24px;
            }

            .subtitle {
                font-size: 0.9em;
            }

            main {
                padding: 0 16px;
            }

            .filters {
                padding: 16px;
            }

            .filter-pills {
                justify-content: flex-start;
            }

            .meditation-content {
                padding: 20px;
            }

            .meditation-title {
                font-size: 1.1em;
            }

            .meditation-description {
                font-size: 0.9em;
            }

            .pagination {
                padding: 24px 16px;
                gap: 8px;
            }

            .pagination-btn {
                padding: 8px 14px;
                font-size: 0.85em;
            }

            .page-number {
                padding: 6px 10px;
                font-size: 0.85em;
                min-width: 36px;
            }
        }
{{end}}`

const scriptTemplate = `{{define "script"}}
        // Filter, search, and pagination functionality
        const filterPills = document.querySelectorAll('.filter-pill');
        const searchInput = document.getElementById('search-input');
        const resultCount = document.getElementById('result-count');
        const meditations = document.querySelectorAll('.meditation');
        const prevBtn = document.getElementById('prev-btn');
        const nextBtn = document.getElementById('next-btn');
        const paginationNumbers = document.getElementById('pagination-numbers');

        const ITEMS_PER_PAGE = 25;
        let selectedPodcast = 'all';
        let currentPage = 1;
        let filteredMeditations = [];

        function escapeRegExp(string) {
            return string.replace(/[.*+?^${}()|[\]\\]/g, '\\$&');
        }

        function highlightText(text, searchTerm) {
            if (!searchTerm) return text;

            const escapedTerm = escapeRegExp(searchTerm);
            const regex = new RegExp('(' + escapedTerm + ')', 'gi');
            return text.replace(regex, '<span class="highlight">$1</span>');
        }

        function applyFilters() {
            const searchTerm = searchInput.value.toLowerCase().trim();
            filteredMeditations = [];

            // First pass: determine which meditations match filters
            meditations.forEach(meditation => {
                const podcast = meditation.getAttribute('data-podcast');
                const title = meditation.getAttribute('data-title');
                const description = meditation.getAttribute('data-description');
                const originalTitle = meditation.getAttribute('data-original-title');

                // Check podcast filter
                const podcastMatch = selectedPodcast === 'all' || podcast === selectedPodcast;

                // Check search term
                const searchMatch = searchTerm === '' ||
                                   title.includes(searchTerm) ||
                                   description.includes(searchTerm);

                if (podcastMatch && searchMatch) {
                    filteredMeditations.push({
                        element: meditation,
                        originalTitle: originalTitle
                    });
                }
            });

            // Reset to page 1 when filters change
            currentPage = 1;

            // Apply pagination
            applyPagination(searchTerm);
        }

        function applyPagination(searchTerm = '') {
            const totalPages = Math.ceil(filteredMeditations.length / ITEMS_PER_PAGE);
            const startIndex = (currentPage - 1) * ITEMS_PER_PAGE;
            const endIndex = startIndex + ITEMS_PER_PAGE;

            // Hide all meditations first
            meditations.forEach(m => m.classList.add('hidden'));

            // Show only the meditations for the current page
            filteredMeditations.forEach((item, index) => {
                const meditation = item.element;
                const titleElement = meditation.querySelector('.meditation-title');

                if (index >= startIndex && index < endIndex) {
                    meditation.classList.remove('hidden');

                    // Apply highlighting to title if there's a search term
                    // Description is left as-is to preserve HTML links
                    if (searchTerm) {
                        titleElement.innerHTML = highlightText(item.originalTitle, searchTerm);
                    } else {
                        titleElement.textContent = item.originalTitle;
                    }
                }
            });

            // Update result count
            const showing = Math.min(filteredMeditations.length, endIndex) - startIndex;

            if (filteredMeditations.length === 0) {
                resultCount.textContent = 'No meditations found';
            } else {
                resultCount.textContent = 'Showing ' + (startIndex + 1) + '-' + (startIndex + showing) + ' of ' + filteredMeditations.length + ' meditations';
            }

            // Update pagination controls
            renderPagination(totalPages);

            // Scroll to top
            window.scrollTo({ top: 0, behavior: 'smooth' });
        }

        function renderPagination(totalPages) {
            // Update prev/next buttons
            prevBtn.disabled = currentPage === 1;
            nextBtn.disabled = currentPage === totalPages || totalPages === 0;

            // Clear pagination numbers
            paginationNumbers.innerHTML = '';

            if (totalPages <= 1) {
                return; // Don't show pagination for single page
            }

            // Generate page numbers with ellipsis
            const maxVisible = 7;
            let pages = [];

            if (totalPages <= maxVisible) {
                // Show all pages
                for (let i = 1; i <= totalPages; i++) {
                    pages.push(i);
                }
            } else {
                // Show pages with ellipsis
                if (currentPage <= 4) {
                    pages = [1, 2, 3, 4, 5, '...', totalPages];
                } else if (currentPage >= totalPages - 3) {
                    pages = [1, '...', totalPages - 4, totalPages - 3, totalPages - 2, totalPages - 1, totalPages];
                } else {
                    pages = [1, '...', currentPage - 1, currentPage, currentPage + 1, '...', totalPages];
                }
            }

            // Render page numbers
            pages.forEach(page => {
                if (page === '...') {
                    const ellipsis = document.createElement('span');
                    ellipsis.className = 'page-ellipsis';
                    ellipsis.textContent = '...';
                    paginationNumbers.appendChild(ellipsis);
                } else {
                    const pageBtn = document.createElement('div');
                    pageBtn.className = 'page-number' + (page === currentPage ? ' active' : '');
                    pageBtn.textContent = page;
                    pageBtn.addEventListener('click', () => goToPage(page));
                    paginationNumbers.appendChild(pageBtn);
                }
            });
        }

        function goToPage(page) {
            currentPage = page;
            const searchTerm = searchInput.value.toLowerCase().trim();
            applyPagination(searchTerm);
        }

        // Filter pill click handlers
        filterPills.forEach(pill => {
            pill.addEventListener('click', function() {
                filterPills.forEach(p => p.classList.remove('active'));
                this.classList.add('active');
                selectedPodcast = this.getAttribute('data-podcast');
                applyFilters();
            });
        });

        // Search input handler
        searchInput.addEventListener('input', applyFilters);

        // Pagination button handlers
        prevBtn.addEventListener('click', () => {
            if (currentPage > 1) {
                goToPage(currentPage - 1);
            }
        });

        nextBtn.addEventListener('click', () => {
            const totalPages = Math.ceil(filteredMeditations.length / ITEMS_PER_PAGE);
            if (currentPage < totalPages) {
                goToPage(currentPage + 1);
            }
        });

        // Make meditation cards clickable
        meditations.forEach(meditation => {
            meditation.addEventListener('click', function() {
                const url = this.getAttribute('data-url');
                if (url) {
                    window.open(url, '_blank');
                }
            });
        });

        // Initialize on page load
        applyFilters();
{{end}}`
